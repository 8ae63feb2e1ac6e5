package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// EnforcementInput carries the pre-clamp figures the policy evaluator runs
// against. A nil range or cap means no policy is configured for the position;
// within a configured policy, zero bounds are inactive.
type EnforcementInput struct {
	TotalSalaryMonthly decimal.Decimal
	Benefits           domain.BenefitsBreakdown
	AnnualPremium      decimal.Decimal
	PremiumRange       *domain.PremiumRange
	Cap                *domain.SalaryCap
	Mode               domain.EnforcementMode
}

// EffectiveMaxCTC resolves the CTC ceiling: the explicit cap when set,
// otherwise the salary cap plus the annual benefits total, otherwise zero
// meaning unconstrained.
func EffectiveMaxCTC(cap *domain.SalaryCap, benefits domain.BenefitsBreakdown) decimal.Decimal {
	if cap == nil {
		return decimal.Zero
	}
	if cap.MaxCTCAnnual.GreaterThan(decimal.Zero) {
		return cap.MaxCTCAnnual
	}
	if cap.MaxSalaryAnnual.GreaterThan(decimal.Zero) {
		return cap.MaxSalaryAnnual.Add(benefits.TotalAnnual)
	}
	return decimal.Zero
}

// EvaluateEnforcement derives the enforcement flags from the pre-clamp
// annualised values and, in hard mode, returns clamped monthly salary and
// CTC figures. Soft mode never alters the monetary values. Out-of-range
// inputs never produce errors; every violation is reported through the
// status flags.
func EvaluateEnforcement(in EnforcementInput) (domain.EnforcementStatus, decimal.Decimal, decimal.Decimal) {
	salaryMonthly := in.TotalSalaryMonthly
	ctcMonthly := salaryMonthly.Add(in.Benefits.TotalMonthly)
	salaryAnnual := salaryMonthly.Mul(twelve)
	ctcAnnual := ctcMonthly.Mul(twelve)

	status := domain.EnforcementStatus{
		OriginalSalaryAnnual: salaryAnnual,
		OriginalCTCAnnual:    ctcAnnual,
	}

	if in.Cap != nil {
		if in.Cap.MaxSalaryAnnual.GreaterThan(decimal.Zero) && salaryAnnual.GreaterThan(in.Cap.MaxSalaryAnnual) {
			status.SalaryCapped = true
		}
		if in.Cap.MinSalaryAnnual.GreaterThan(decimal.Zero) && salaryAnnual.LessThan(in.Cap.MinSalaryAnnual) {
			status.SalaryBelowMin = true
		}
	}

	effectiveMaxCTC := EffectiveMaxCTC(in.Cap, in.Benefits)
	if effectiveMaxCTC.GreaterThan(decimal.Zero) && ctcAnnual.GreaterThan(effectiveMaxCTC) {
		status.CTCCapped = true
	}

	if in.PremiumRange != nil {
		if in.PremiumRange.Min.GreaterThan(decimal.Zero) && in.AnnualPremium.LessThan(in.PremiumRange.Min) {
			status.PremiumBelowMin = true
		}
		if in.PremiumRange.Max.GreaterThan(decimal.Zero) && in.AnnualPremium.GreaterThan(in.PremiumRange.Max) {
			status.PremiumAboveMax = true
		}
	}

	if in.Mode != domain.EnforcementHard {
		return status, salaryMonthly, ctcMonthly
	}

	if status.SalaryCapped {
		salaryMonthly = in.Cap.MaxSalaryAnnual.Div(twelve).Floor()
		ctcMonthly = salaryMonthly.Add(in.Benefits.TotalMonthly)
	}
	if effectiveMaxCTC.GreaterThan(decimal.Zero) && ctcMonthly.Mul(twelve).GreaterThan(effectiveMaxCTC) {
		ctcMonthly = effectiveMaxCTC.Div(twelve).Floor()
		status.CTCCapped = true
	}

	return status, salaryMonthly, ctcMonthly
}
