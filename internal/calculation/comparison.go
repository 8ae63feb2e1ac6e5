package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

// CompareInput is the full input set for one baseline-versus-enhanced
// comparison.
type CompareInput struct {
	Level            string
	Cell             int
	DearnessPercent  decimal.Decimal
	City             domain.CityClass
	Multiplier       decimal.Decimal
	AnnualPremium    decimal.Decimal
	Strategy         domain.FinancialStrategy
	Method           domain.ComputationMethod
	Benefits         domain.Benefits
	SpecialAllowance decimal.Decimal
	TPTACity         bool
	Housing          *domain.HousingConfig
	EnforcementMode  domain.EnforcementMode
	PremiumRange     *domain.PremiumRange
	Cap              *domain.SalaryCap
}

// Compare runs the baseline and enhanced calculators for one input set and
// derives the premium metrics. The premium is measured as enhanced CTC over
// baseline salary, the figure an offer letter quotes against the statutory
// scale.
func Compare(in CompareInput) domain.ComparisonResult {
	basic := paydata.BasicPayAt(in.Level, in.Cell)

	baseline := CalculateBaseline(BaselineInput{
		BasicPay:         basic,
		DearnessPercent:  in.DearnessPercent,
		City:             in.City,
		Level:            in.Level,
		SpecialAllowance: in.SpecialAllowance,
		TPTACity:         in.TPTACity,
		Housing:          in.Housing,
	})

	enhanced := CalculateEnhanced(EnhancedInput{
		Baseline:         baseline,
		Multiplier:       in.Multiplier,
		AnnualPremium:    in.AnnualPremium,
		Strategy:         in.Strategy,
		Method:           in.Method,
		Benefits:         in.Benefits,
		DearnessPercent:  in.DearnessPercent,
		City:             in.City,
		Level:            in.Level,
		SpecialAllowance: in.SpecialAllowance,
		TPTACity:         in.TPTACity,
		Housing:          in.Housing,
		EnforcementMode:  in.EnforcementMode,
		PremiumRange:     in.PremiumRange,
		Cap:              in.Cap,
	})

	premiumMonthly := enhanced.TotalCTCMonthly.Sub(baseline.TotalMonthly)

	premiumPct := decimal.Zero
	if !baseline.TotalMonthly.IsZero() {
		premiumPct = premiumMonthly.Div(baseline.TotalMonthly).Mul(oneHundred)
	}

	return domain.ComparisonResult{
		Baseline:             baseline,
		Enhanced:             enhanced,
		PremiumAmountMonthly: premiumMonthly,
		PremiumAmountAnnual:  premiumMonthly.Mul(twelve),
		PremiumPercentage:    premiumPct,
	}
}
