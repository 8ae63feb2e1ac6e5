package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

// Logger is the minimal logging surface the engine needs. Callers install a
// real implementation (the CLI and server use logrus); a nil logger disables
// output.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// CalculationEngine binds the policy settings and the position catalog to
// the pure calculators. It holds no mutable state of its own: every call is
// a pure function of the settings snapshot passed in.
type CalculationEngine struct {
	logger Logger
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{}
}

// SetLogger installs a logger for per-call diagnostics.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.logger = l
}

func (ce *CalculationEngine) debugf(format string, args ...any) {
	if ce.logger != nil {
		ce.logger.Debugf(format, args...)
	}
}

// ComparePosition runs a full comparison for one catalog position at the
// pay cell suggested by the given experience. Unknown position ids degrade
// to a zero-valued comparison, matching the engine's no-error contract.
func (ce *CalculationEngine) ComparePosition(settings domain.Settings, positionID, experienceYears int) domain.ComparisonResult {
	position, ok := paydata.PositionByID(positionID)
	if !ok {
		ce.debugf("unknown position id %d", positionID)
		return domain.ComparisonResult{}
	}
	cell := position.SuggestCell(experienceYears)
	return ce.CompareAt(settings, position, cell)
}

// CompareAt runs a full comparison for a position at an explicit pay cell.
func (ce *CalculationEngine) CompareAt(settings domain.Settings, position paydata.FacultyPosition, cell int) domain.ComparisonResult {
	special := decimal.Zero
	if position.SpecialAllowance != nil {
		special = *position.SpecialAllowance
	}

	ce.debugf("comparing %s level %s cell %d", position.Name, position.Level, cell)

	return Compare(CompareInput{
		Level:            position.Level,
		Cell:             cell,
		DearnessPercent:  settings.DearnessPercent,
		City:             settings.CityClass,
		Multiplier:       settings.Multiplier,
		AnnualPremium:    settings.AnnualPremium,
		Strategy:         settings.Strategy,
		Method:           settings.Method,
		Benefits:         settings.ResolveBenefits(position.ID, position.Level),
		SpecialAllowance: special,
		TPTACity:         settings.TPTACity,
		Housing:          settings.Housing,
		EnforcementMode:  settings.EnforcementMode,
		PremiumRange:     settings.PremiumRangeFor(position.ID),
		Cap:              settings.SalaryCapFor(position.ID),
	})
}

// CompareAll runs the comparison for every catalog position at the cell its
// experience range suggests for the given years of experience.
func (ce *CalculationEngine) CompareAll(settings domain.Settings, experienceYears int) map[int]domain.ComparisonResult {
	results := make(map[int]domain.ComparisonResult)
	for _, position := range paydata.Positions() {
		results[position.ID] = ce.CompareAt(settings, position, position.SuggestCell(experienceYears))
	}
	return results
}

// Project derives the next-pay-commission projection for a position at an
// explicit cell.
func (ce *CalculationEngine) Project(settings domain.Settings, position paydata.FacultyPosition, cell int, fitmentFactor, nextDearnessPercent decimal.Decimal) domain.ProjectionResult {
	special := decimal.Zero
	if position.SpecialAllowance != nil {
		special = *position.SpecialAllowance
	}

	baseline := CalculateBaseline(BaselineInput{
		BasicPay:         paydata.BasicPayAt(position.Level, cell),
		DearnessPercent:  settings.DearnessPercent,
		City:             settings.CityClass,
		Level:            position.Level,
		SpecialAllowance: special,
		TPTACity:         settings.TPTACity,
		Housing:          settings.Housing,
	})

	return ProjectNextCommission(ProjectionInput{
		Baseline:            baseline,
		FitmentFactor:       fitmentFactor,
		NextDearnessPercent: nextDearnessPercent,
		City:                settings.CityClass,
		Level:               position.Level,
		SpecialAllowance:    special,
		TPTACity:            settings.TPTACity,
		Housing:             settings.Housing,
	})
}
