package domain

import (
	"github.com/shopspring/decimal"
)

// SalaryBreakdown is the statutory (UGC) pay breakdown for a single month.
// All breakdown records are value objects: recomputed on every input change,
// never mutated in place.
type SalaryBreakdown struct {
	BasicPay           decimal.Decimal `json:"basic_pay"`
	DearnessAllowance  decimal.Decimal `json:"dearness_allowance"`
	HouseRentAllowance decimal.Decimal `json:"house_rent_allowance"`
	HRAMode            HRAMode         `json:"hra_mode"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	SpecialAllowance   decimal.Decimal `json:"special_allowance"`
	TotalMonthly       decimal.Decimal `json:"total_monthly"`
	TotalAnnual        decimal.Decimal `json:"total_annual"`
}

// EnhancedBreakdown is the institutional (WPU) pay breakdown. TotalSalary and
// TotalCTC reflect any hard-mode clamping; the pre-clamp figures live in
// Enforcement.OriginalSalaryAnnual / OriginalCTCAnnual.
type EnhancedBreakdown struct {
	BasicPay            decimal.Decimal   `json:"basic_pay"`
	DearnessAllowance   decimal.Decimal   `json:"dearness_allowance"`
	HouseRentAllowance  decimal.Decimal   `json:"house_rent_allowance"`
	HRAMode             HRAMode           `json:"hra_mode"`
	TransportAllowance  decimal.Decimal   `json:"transport_allowance"`
	SpecialAllowance    decimal.Decimal   `json:"special_allowance"`
	MultiplicativeBonus decimal.Decimal   `json:"multiplicative_bonus"`
	FlatPremiumMonthly  decimal.Decimal   `json:"flat_premium_monthly"`
	TotalSalaryMonthly  decimal.Decimal   `json:"total_salary_monthly"`
	TotalSalaryAnnual   decimal.Decimal   `json:"total_salary_annual"`
	Benefits            BenefitsBreakdown `json:"benefits"`
	TotalCTCMonthly     decimal.Decimal   `json:"total_ctc_monthly"`
	TotalCTCAnnual      decimal.Decimal   `json:"total_ctc_annual"`
	Enforcement         EnforcementStatus `json:"enforcement"`
}

// EnforcementStatus reports range-policy violations. Violations are policy
// signals, never errors: soft mode only sets the flags, hard mode also clamps
// the monetary values in the owning breakdown.
type EnforcementStatus struct {
	SalaryCapped         bool            `json:"salary_capped"`
	SalaryBelowMin       bool            `json:"salary_below_min"`
	CTCCapped            bool            `json:"ctc_capped"`
	PremiumBelowMin      bool            `json:"premium_below_min"`
	PremiumAboveMax      bool            `json:"premium_above_max"`
	OriginalSalaryAnnual decimal.Decimal `json:"original_salary_annual"`
	OriginalCTCAnnual    decimal.Decimal `json:"original_ctc_annual"`
}

// Violated reports whether any enforcement flag is set.
func (s EnforcementStatus) Violated() bool {
	return s.SalaryCapped || s.SalaryBelowMin || s.CTCCapped || s.PremiumBelowMin || s.PremiumAboveMax
}

// PremiumRange bounds the flat annual premium for a position. A zero bound
// is inactive.
type PremiumRange struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// SalaryCap bounds the annual institutional salary and CTC for a position.
// A zero bound is inactive; a zero MaxCTCAnnual falls back to
// MaxSalaryAnnual plus the annual benefits total.
type SalaryCap struct {
	MinSalaryAnnual decimal.Decimal `yaml:"min_salary_annual" json:"min_salary_annual"`
	MaxSalaryAnnual decimal.Decimal `yaml:"max_salary_annual" json:"max_salary_annual"`
	MaxCTCAnnual    decimal.Decimal `yaml:"max_ctc_annual" json:"max_ctc_annual"`
}

// ComparisonResult combines a baseline and enhanced breakdown with the
// derived premium metrics.
type ComparisonResult struct {
	Baseline             SalaryBreakdown   `json:"baseline"`
	Enhanced             EnhancedBreakdown `json:"enhanced"`
	PremiumAmountMonthly decimal.Decimal   `json:"premium_amount_monthly"`
	PremiumAmountAnnual  decimal.Decimal   `json:"premium_amount_annual"`
	PremiumPercentage    decimal.Decimal   `json:"premium_percentage"`
}

// ProjectionResult is a projected next-pay-commission breakdown derived by
// scaling basic pay with a fitment factor.
type ProjectionResult struct {
	Projected     SalaryBreakdown `json:"projected"`
	FitmentFactor decimal.Decimal `json:"fitment_factor"`
	UpliftPercent decimal.Decimal `json:"uplift_percent"`
}
