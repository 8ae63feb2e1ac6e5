package server

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// CalculationMetadata is attached to every successful calculation response.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// ErrorResponse is the JSON error envelope for every non-2xx response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SettingsOverride carries per-request policy overrides. Nil fields keep the
// server's stored settings.
type SettingsOverride struct {
	DearnessPercent *decimal.Decimal `json:"dearness_percent,omitempty"`
	CityClass       *string          `json:"city_class,omitempty" validate:"omitempty,oneof=X Y Z"`
	TPTACity        *bool            `json:"tpta_city,omitempty"`
	Multiplier      *decimal.Decimal `json:"multiplier,omitempty"`
	AnnualPremium   *decimal.Decimal `json:"annual_premium,omitempty"`
	Strategy        *string          `json:"strategy,omitempty" validate:"omitempty,oneof=multiplier premium both higher lower"`
	Method          *string          `json:"method,omitempty" validate:"omitempty,oneof=on_total on_basic"`
	EnforcementMode *string          `json:"enforcement_mode,omitempty" validate:"omitempty,oneof=soft hard"`
}

// Apply copies the non-nil overrides onto a settings snapshot.
func (o *SettingsOverride) Apply(settings domain.Settings) domain.Settings {
	if o == nil {
		return settings
	}
	if o.DearnessPercent != nil {
		settings.DearnessPercent = *o.DearnessPercent
	}
	if o.CityClass != nil {
		settings.CityClass = domain.CityClass(*o.CityClass)
	}
	if o.TPTACity != nil {
		settings.TPTACity = *o.TPTACity
	}
	if o.Multiplier != nil {
		settings.Multiplier = *o.Multiplier
	}
	if o.AnnualPremium != nil {
		settings.AnnualPremium = *o.AnnualPremium
	}
	if o.Strategy != nil {
		settings.Strategy = domain.FinancialStrategy(*o.Strategy)
	}
	if o.Method != nil {
		settings.Method = domain.ComputationMethod(*o.Method)
	}
	if o.EnforcementMode != nil {
		settings.EnforcementMode = domain.EnforcementMode(*o.EnforcementMode)
	}
	return settings
}

// CompareRequest runs the full statutory-vs-offer comparison for one
// position. Cell, when present, overrides the experience-based suggestion.
type CompareRequest struct {
	PositionID      int               `json:"position_id" validate:"required,min=1"`
	ExperienceYears int               `json:"experience_years" validate:"min=0"`
	Cell            *int              `json:"cell,omitempty" validate:"omitempty,min=0"`
	Overrides       *SettingsOverride `json:"overrides,omitempty"`
}

// CompareResponse wraps a comparison result with calculation metadata.
type CompareResponse struct {
	CalculationMetadata CalculationMetadata     `json:"calculation_metadata"`
	Result              domain.ComparisonResult `json:"result"`
}

// BaselineRequest computes the statutory breakdown only.
type BaselineRequest struct {
	Level     string            `json:"level" validate:"required"`
	Cell      int               `json:"cell" validate:"min=0"`
	Overrides *SettingsOverride `json:"overrides,omitempty"`
}

// BaselineResponse wraps a statutory breakdown with calculation metadata.
type BaselineResponse struct {
	CalculationMetadata CalculationMetadata    `json:"calculation_metadata"`
	Result              domain.SalaryBreakdown `json:"result"`
}

// ProjectionRequest projects a position's statutory pay under the next pay
// commission.
type ProjectionRequest struct {
	PositionID          int               `json:"position_id" validate:"required,min=1"`
	Cell                int               `json:"cell" validate:"min=0"`
	FitmentFactor       decimal.Decimal   `json:"fitment_factor"`
	NextDearnessPercent decimal.Decimal   `json:"next_dearness_percent"`
	Overrides           *SettingsOverride `json:"overrides,omitempty"`
}

// ProjectionResponse wraps a projection result with calculation metadata.
type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata     `json:"calculation_metadata"`
	Result              domain.ProjectionResult `json:"result"`
}

// PositionInfo is a catalog position in list responses.
type PositionInfo struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Level            string           `json:"level"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance,omitempty"`
	ExperienceMin    int              `json:"experience_min"`
	ExperienceMax    int              `json:"experience_max"`
}

// LevelInfo is an academic pay level in list responses.
type LevelInfo struct {
	ID       string            `json:"id"`
	EntryPay decimal.Decimal   `json:"entry_pay"`
	Cells    int               `json:"cells"`
	Ladder   []decimal.Decimal `json:"ladder"`
}
