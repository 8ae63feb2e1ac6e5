package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skaranth/facpay/internal/domain"
)

func standardBenefits() domain.Benefits {
	return domain.Benefits{
		ProfessionalDevMonthly: decimal.NewFromInt(2500),
		RetirementFundPercent:  decimal.NewFromInt(12),
		GratuityPercent:        decimal.NewFromFloat(4.81),
		HealthInsuranceMonthly: decimal.NewFromInt(1500),
	}
}

func TestEvaluateEnforcement_SoftFlagsWithoutClamping(t *testing.T) {
	benefits := CalculateBenefits(decimal.NewFromInt(57700), standardBenefits())

	status, salary, ctc := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: decimal.NewFromInt(220109),
		Benefits:           benefits,
		AnnualPremium:      decimal.NewFromInt(300000),
		Cap:                &domain.SalaryCap{MaxSalaryAnnual: decimal.NewFromInt(2300000)},
		Mode:               domain.EnforcementSoft,
	})

	assert.True(t, status.SalaryCapped, "Soft mode still reports the violation")
	assertDecimalEqual(t, 220109, salary, "Soft mode must not alter salary")
	assertDecimalEqual(t, 233808, ctc, "Soft mode must not alter CTC")
	assertDecimalEqual(t, 2641308, status.OriginalSalaryAnnual)
}

func TestEvaluateEnforcement_HardClampsSalary(t *testing.T) {
	benefits := CalculateBenefits(decimal.NewFromInt(57700), standardBenefits())

	status, salary, ctc := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: decimal.NewFromInt(220109),
		Benefits:           benefits,
		AnnualPremium:      decimal.NewFromInt(300000),
		Cap:                &domain.SalaryCap{MaxSalaryAnnual: decimal.NewFromInt(2300000)},
		Mode:               domain.EnforcementHard,
	})

	assert.True(t, status.SalaryCapped)
	// 2300000 / 12, floored.
	assertDecimalEqual(t, 191666, salary)
	// CTC recomputed from the clamped salary: 191666 + 13699.
	assertDecimalEqual(t, 205365, ctc)
	// Pre-clamp figures survive in the status.
	assertDecimalEqual(t, 2641308, status.OriginalSalaryAnnual)
	assertDecimalEqual(t, 2805696, status.OriginalCTCAnnual)
}

func TestEvaluateEnforcement_ExplicitCTCCap(t *testing.T) {
	benefits := CalculateBenefits(decimal.NewFromInt(57700), standardBenefits())

	status, _, ctc := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: decimal.NewFromInt(150000),
		Benefits:           benefits, // 13699/month
		Cap:                &domain.SalaryCap{MaxCTCAnnual: decimal.NewFromInt(1800000)},
		Mode:               domain.EnforcementHard,
	})

	assert.True(t, status.CTCCapped)
	assert.False(t, status.SalaryCapped)
	// 1800000 / 12, floored.
	assertDecimalEqual(t, 150000, ctc)
}

func TestEvaluateEnforcement_MinSalaryFlagOnly(t *testing.T) {
	status, salary, _ := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: decimal.NewFromInt(50000),
		Cap:                &domain.SalaryCap{MinSalaryAnnual: decimal.NewFromInt(1000000)},
		Mode:               domain.EnforcementHard,
	})

	// Minimums are advisory even in hard mode: no raise, just the flag.
	assert.True(t, status.SalaryBelowMin)
	assertDecimalEqual(t, 50000, salary)
}

func TestEvaluateEnforcement_PremiumRangeFlags(t *testing.T) {
	tests := []struct {
		name     string
		premium  int64
		min, max int64
		belowMin bool
		aboveMax bool
	}{
		{"within range", 300000, 100000, 500000, false, false},
		{"below minimum", 300000, 400000, 0, true, false},
		{"above maximum", 300000, 0, 200000, false, true},
		{"zero bounds inactive", 300000, 0, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, _ := EvaluateEnforcement(EnforcementInput{
				TotalSalaryMonthly: decimal.NewFromInt(100000),
				AnnualPremium:      decimal.NewFromInt(tt.premium),
				PremiumRange: &domain.PremiumRange{
					Min: decimal.NewFromInt(tt.min),
					Max: decimal.NewFromInt(tt.max),
				},
				Mode: domain.EnforcementSoft,
			})
			assert.Equal(t, tt.belowMin, status.PremiumBelowMin)
			assert.Equal(t, tt.aboveMax, status.PremiumAboveMax)
		})
	}
}

func TestEvaluateEnforcement_NoPolicyConfigured(t *testing.T) {
	status, salary, ctc := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: decimal.NewFromInt(999999),
		Mode:               domain.EnforcementHard,
	})

	assert.False(t, status.Violated(), "No policy means no flags")
	assertDecimalEqual(t, 999999, salary)
	assertDecimalEqual(t, 999999, ctc)
}

func TestEffectiveMaxCTC(t *testing.T) {
	benefits := domain.BenefitsBreakdown{TotalAnnual: decimal.NewFromInt(164388)}

	t.Run("explicit ctc cap wins", func(t *testing.T) {
		cap := &domain.SalaryCap{
			MaxSalaryAnnual: decimal.NewFromInt(2300000),
			MaxCTCAnnual:    decimal.NewFromInt(2500000),
		}
		assertDecimalEqual(t, 2500000, EffectiveMaxCTC(cap, benefits))
	})

	t.Run("salary cap plus benefits", func(t *testing.T) {
		cap := &domain.SalaryCap{MaxSalaryAnnual: decimal.NewFromInt(2300000)}
		assertDecimalEqual(t, 2464388, EffectiveMaxCTC(cap, benefits))
	})

	t.Run("unconstrained", func(t *testing.T) {
		assert.True(t, EffectiveMaxCTC(nil, benefits).IsZero())
		assert.True(t, EffectiveMaxCTC(&domain.SalaryCap{}, benefits).IsZero())
	})
}
