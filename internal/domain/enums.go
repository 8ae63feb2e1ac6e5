package domain

// CityClass is the statutory city classification used to select HRA and
// transport allowance rates.
type CityClass string

const (
	CityX CityClass = "X"
	CityY CityClass = "Y"
	CityZ CityClass = "Z"
)

// IsValid reports whether the city classification is one of the three tiers.
func (c CityClass) IsValid() bool {
	switch c {
	case CityX, CityY, CityZ:
		return true
	}
	return false
}

// HRAMode tags how a house rent allowance amount was computed.
type HRAMode string

const (
	HRANone    HRAMode = "none"
	HRAPercent HRAMode = "percent"
	HRALumpSum HRAMode = "lumpsum"
)

// FinancialStrategy selects how the institutional premium combines with the
// multiplicative enhancement.
type FinancialStrategy string

const (
	StrategyMultiplier FinancialStrategy = "multiplier"
	StrategyPremium    FinancialStrategy = "premium"
	StrategyBoth       FinancialStrategy = "both"
	StrategyHigher     FinancialStrategy = "higher"
	StrategyLower      FinancialStrategy = "lower"
)

// IsValid reports whether the strategy is a known variant.
func (s FinancialStrategy) IsValid() bool {
	switch s {
	case StrategyMultiplier, StrategyPremium, StrategyBoth, StrategyHigher, StrategyLower:
		return true
	}
	return false
}

// ComputationMethod selects what the multiplicative enhancement applies to.
type ComputationMethod string

const (
	// MethodOnTotal applies the multiplier to the whole baseline salary;
	// basic pay stays anchored to the statutory level.
	MethodOnTotal ComputationMethod = "on_total"
	// MethodOnBasic applies the multiplier directly to basic pay; all
	// allowances recompute on the inflated basic.
	MethodOnBasic ComputationMethod = "on_basic"
)

// IsValid reports whether the method is a known variant.
func (m ComputationMethod) IsValid() bool {
	return m == MethodOnTotal || m == MethodOnBasic
}

// EnforcementMode controls whether range violations only raise flags or also
// clamp the computed values.
type EnforcementMode string

const (
	EnforcementSoft EnforcementMode = "soft"
	EnforcementHard EnforcementMode = "hard"
)

// IsValid reports whether the enforcement mode is a known variant.
func (m EnforcementMode) IsValid() bool {
	return m == EnforcementSoft || m == EnforcementHard
}
