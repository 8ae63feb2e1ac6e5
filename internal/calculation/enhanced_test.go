package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skaranth/facpay/internal/domain"
)

// entryBaseline is the statutory breakdown every enhanced test starts from:
// level 10 cell 0, DA 58%, city Y, no TPTA, total 108394/month.
func entryBaseline() domain.SalaryBreakdown {
	return CalculateBaseline(BaselineInput{
		BasicPay:        decimal.NewFromInt(57700),
		DearnessPercent: decimal.NewFromInt(58),
		City:            domain.CityY,
		Level:           "10",
	})
}

func enhancedInput(strategy domain.FinancialStrategy, method domain.ComputationMethod) EnhancedInput {
	return EnhancedInput{
		Baseline:        entryBaseline(),
		Multiplier:      decimal.NewFromFloat(1.3),
		AnnualPremium:   decimal.NewFromInt(300000),
		Strategy:        strategy,
		Method:          method,
		DearnessPercent: decimal.NewFromInt(58),
		City:            domain.CityY,
		Level:           "10",
		EnforcementMode: domain.EnforcementSoft,
	}
}

func TestCalculateEnhanced_OnTotal_Multiplier(t *testing.T) {
	result := CalculateEnhanced(enhancedInput(domain.StrategyMultiplier, domain.MethodOnTotal))

	// Components carried from the baseline.
	assertDecimalEqual(t, 57700, result.BasicPay)
	assertDecimalEqual(t, 33466, result.DearnessAllowance)
	assertDecimalEqual(t, 11540, result.HouseRentAllowance)
	assertDecimalEqual(t, 5688, result.TransportAllowance)

	// 30% of the 108394 gross, itemised as a bonus.
	assertDecimalEqual(t, 32518, result.MultiplicativeBonus)
	assert.True(t, result.FlatPremiumMonthly.IsZero(), "Multiplier strategy must zero the premium")
	assertDecimalEqual(t, 140912, result.TotalSalaryMonthly)
	assertDecimalEqual(t, 1690944, result.TotalSalaryAnnual)
}

func TestCalculateEnhanced_OnTotal_Premium(t *testing.T) {
	result := CalculateEnhanced(enhancedInput(domain.StrategyPremium, domain.MethodOnTotal))

	assert.True(t, result.MultiplicativeBonus.IsZero(), "Premium strategy must zero the bonus")
	assertDecimalEqual(t, 25000, result.FlatPremiumMonthly)
	assertDecimalEqual(t, 133394, result.TotalSalaryMonthly)
}

func TestCalculateEnhanced_OnTotal_Both(t *testing.T) {
	result := CalculateEnhanced(enhancedInput(domain.StrategyBoth, domain.MethodOnTotal))

	assertDecimalEqual(t, 32518, result.MultiplicativeBonus)
	assertDecimalEqual(t, 25000, result.FlatPremiumMonthly)
	assertDecimalEqual(t, 165912, result.TotalSalaryMonthly)
}

func TestCalculateEnhanced_OnBasic_Multiplier(t *testing.T) {
	result := CalculateEnhanced(enhancedInput(domain.StrategyMultiplier, domain.MethodOnBasic))

	// Basic inflated, components recomputed, nothing itemised separately.
	assertDecimalEqual(t, 75010, result.BasicPay) // 57700 * 1.3
	assertDecimalEqual(t, 43506, result.DearnessAllowance)
	assertDecimalEqual(t, 15002, result.HouseRentAllowance)
	assertDecimalEqual(t, 5688, result.TransportAllowance)
	assert.True(t, result.MultiplicativeBonus.IsZero())
	assertDecimalEqual(t, 139206, result.TotalSalaryMonthly)
}

func TestCalculateEnhanced_OnBasic_PremiumResetsComponents(t *testing.T) {
	result := CalculateEnhanced(enhancedInput(domain.StrategyPremium, domain.MethodOnBasic))

	// The premium path rewinds the inflated components to baseline values.
	assertDecimalEqual(t, 57700, result.BasicPay)
	assertDecimalEqual(t, 33466, result.DearnessAllowance)
	assertDecimalEqual(t, 11540, result.HouseRentAllowance)
	assertDecimalEqual(t, 5688, result.TransportAllowance)
	assertDecimalEqual(t, 133394, result.TotalSalaryMonthly)
}

func TestCalculateEnhanced_OnBasic_PremiumBenefitsOnResetBasic(t *testing.T) {
	in := enhancedInput(domain.StrategyPremium, domain.MethodOnBasic)
	in.Benefits = domain.Benefits{RetirementFundPercent: decimal.NewFromInt(12)}

	result := CalculateEnhanced(in)

	// 12% of the baseline basic, not of the inflated one.
	assertDecimalEqual(t, 6924, result.Benefits.RetirementFund)
}

func TestCalculateEnhanced_Higher(t *testing.T) {
	t.Run("multiplier path wins", func(t *testing.T) {
		in := enhancedInput(domain.StrategyHigher, domain.MethodOnTotal)
		// 25000/month premium is below the 32518 bonus.
		result := CalculateEnhanced(in)

		assertDecimalEqual(t, 140912, result.TotalSalaryMonthly)
		assertDecimalEqual(t, 32518, result.MultiplicativeBonus)
		assert.True(t, result.FlatPremiumMonthly.IsZero())
	})

	t.Run("premium path wins", func(t *testing.T) {
		in := enhancedInput(domain.StrategyHigher, domain.MethodOnTotal)
		in.AnnualPremium = decimal.NewFromInt(600000) // 50000/month
		result := CalculateEnhanced(in)

		assertDecimalEqual(t, 158394, result.TotalSalaryMonthly)
		assert.True(t, result.MultiplicativeBonus.IsZero())
		assertDecimalEqual(t, 50000, result.FlatPremiumMonthly)
	})

	t.Run("tie resolves to the multiplier path", func(t *testing.T) {
		in := enhancedInput(domain.StrategyHigher, domain.MethodOnTotal)
		in.AnnualPremium = decimal.NewFromInt(390216) // 32518/month, exactly the bonus
		result := CalculateEnhanced(in)

		assertDecimalEqual(t, 140912, result.TotalSalaryMonthly)
		assertDecimalEqual(t, 32518, result.MultiplicativeBonus)
		assert.True(t, result.FlatPremiumMonthly.IsZero())
	})
}

func TestCalculateEnhanced_Lower(t *testing.T) {
	in := enhancedInput(domain.StrategyLower, domain.MethodOnTotal)
	result := CalculateEnhanced(in)

	// Premium total 133394 is below multiplier total 140912.
	assertDecimalEqual(t, 133394, result.TotalSalaryMonthly)
	assert.True(t, result.MultiplicativeBonus.IsZero())
	assertDecimalEqual(t, 25000, result.FlatPremiumMonthly)
}

func TestCalculateEnhanced_HigherNeverBelowLower(t *testing.T) {
	premiums := []int64{0, 100000, 390216, 600000, 5000000}
	for _, premium := range premiums {
		higher := enhancedInput(domain.StrategyHigher, domain.MethodOnTotal)
		higher.AnnualPremium = decimal.NewFromInt(premium)
		lower := enhancedInput(domain.StrategyLower, domain.MethodOnTotal)
		lower.AnnualPremium = decimal.NewFromInt(premium)

		h := CalculateEnhanced(higher)
		l := CalculateEnhanced(lower)
		assert.True(t, h.TotalSalaryMonthly.GreaterThanOrEqual(l.TotalSalaryMonthly),
			"higher (%s) should never trail lower (%s) at premium %d",
			h.TotalSalaryMonthly, l.TotalSalaryMonthly, premium)
	}
}

func TestCalculateEnhanced_UnknownStrategyFallsBackToMultiplier(t *testing.T) {
	in := enhancedInput(domain.FinancialStrategy("mystery"), domain.MethodOnTotal)
	result := CalculateEnhanced(in)

	assertDecimalEqual(t, 140912, result.TotalSalaryMonthly)
	assert.True(t, result.FlatPremiumMonthly.IsZero())
}
