package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// EnhancedInput carries the institutional calculator's inputs on top of an
// already-computed baseline breakdown.
type EnhancedInput struct {
	Baseline         domain.SalaryBreakdown
	Multiplier       decimal.Decimal
	AnnualPremium    decimal.Decimal
	Strategy         domain.FinancialStrategy
	Method           domain.ComputationMethod
	Benefits         domain.Benefits
	DearnessPercent  decimal.Decimal
	City             domain.CityClass
	Level            string
	SpecialAllowance decimal.Decimal
	TPTACity         bool
	Housing          *domain.HousingConfig
	EnforcementMode  domain.EnforcementMode
	PremiumRange     *domain.PremiumRange
	Cap              *domain.SalaryCap
}

// CalculateEnhanced computes the institutional (WPU) salary breakdown.
//
// The strategy arms are implemented as literal case-by-case logic: each arm
// decides the total, which line items survive, and whether the on-basic
// components reset to baseline values. Under MethodOnTotal no reset ever
// occurs because the components were never altered by the multiplier.
func CalculateEnhanced(in EnhancedInput) domain.EnhancedBreakdown {
	base := in.Baseline

	var basic, da, hra, ta, bonus decimal.Decimal
	var hraMode domain.HRAMode

	switch in.Method {
	case domain.MethodOnBasic:
		// The uplift is embedded in components recomputed on the inflated
		// basic; no separately itemised bonus.
		basic = base.BasicPay.Mul(in.Multiplier).Round(0)
		da = CalculateDA(basic, in.DearnessPercent)
		hra, hraMode = CalculateHRA(basic, in.City, in.Housing)
		ta = CalculateTA(in.Level, in.TPTACity, in.DearnessPercent)
		bonus = decimal.Zero
	default: // MethodOnTotal
		basic = base.BasicPay
		da = base.DearnessAllowance
		// HRA recomputed: the enhanced housing config can differ from the
		// statutory default.
		hra, hraMode = CalculateHRA(basic, in.City, in.Housing)
		ta = base.TransportAllowance
		gross := basic.Add(da).Add(hra).Add(ta).Add(in.SpecialAllowance)
		bonus = gross.Mul(in.Multiplier.Sub(one)).Round(0)
	}

	baseSalaryMonthly := basic.Add(da).Add(hra).Add(ta).Add(in.SpecialAllowance).Add(bonus)
	flatPremiumMonthly := in.AnnualPremium.Div(twelve).Round(0)

	// resetToBaseline rewinds the on-basic inflation when the premium path
	// carries the total.
	resetToBaseline := func() {
		if in.Method != domain.MethodOnBasic {
			return
		}
		basic = base.BasicPay
		da = base.DearnessAllowance
		hra = base.HouseRentAllowance
		hraMode = base.HRAMode
		ta = base.TransportAllowance
	}

	var totalSalaryMonthly decimal.Decimal
	switch in.Strategy {
	case domain.StrategyMultiplier:
		totalSalaryMonthly = baseSalaryMonthly
		flatPremiumMonthly = decimal.Zero

	case domain.StrategyPremium:
		totalSalaryMonthly = base.TotalMonthly.Add(flatPremiumMonthly)
		bonus = decimal.Zero
		resetToBaseline()

	case domain.StrategyBoth:
		totalSalaryMonthly = baseSalaryMonthly.Add(flatPremiumMonthly)

	case domain.StrategyHigher:
		premiumTotal := base.TotalMonthly.Add(flatPremiumMonthly)
		if premiumTotal.GreaterThan(baseSalaryMonthly) {
			totalSalaryMonthly = premiumTotal
			bonus = decimal.Zero
			resetToBaseline()
		} else {
			totalSalaryMonthly = baseSalaryMonthly
			flatPremiumMonthly = decimal.Zero
		}

	case domain.StrategyLower:
		premiumTotal := base.TotalMonthly.Add(flatPremiumMonthly)
		if premiumTotal.LessThan(baseSalaryMonthly) {
			totalSalaryMonthly = premiumTotal
			bonus = decimal.Zero
			resetToBaseline()
		} else {
			totalSalaryMonthly = baseSalaryMonthly
			flatPremiumMonthly = decimal.Zero
		}

	default:
		totalSalaryMonthly = baseSalaryMonthly
		flatPremiumMonthly = decimal.Zero
	}

	// Benefits run on the current basic, after any reset above.
	benefits := CalculateBenefits(basic, in.Benefits)

	status, finalSalaryMonthly, finalCTCMonthly := EvaluateEnforcement(EnforcementInput{
		TotalSalaryMonthly: totalSalaryMonthly,
		Benefits:           benefits,
		AnnualPremium:      in.AnnualPremium,
		PremiumRange:       in.PremiumRange,
		Cap:                in.Cap,
		Mode:               in.EnforcementMode,
	})

	return domain.EnhancedBreakdown{
		BasicPay:            basic,
		DearnessAllowance:   da,
		HouseRentAllowance:  hra,
		HRAMode:             hraMode,
		TransportAllowance:  ta,
		SpecialAllowance:    in.SpecialAllowance,
		MultiplicativeBonus: bonus,
		FlatPremiumMonthly:  flatPremiumMonthly,
		TotalSalaryMonthly:  finalSalaryMonthly,
		TotalSalaryAnnual:   finalSalaryMonthly.Mul(twelve),
		Benefits:            benefits,
		TotalCTCMonthly:     finalCTCMonthly,
		TotalCTCAnnual:      finalCTCMonthly.Mul(twelve),
		Enforcement:         status,
	}
}
