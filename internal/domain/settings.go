package domain

import (
	"github.com/shopspring/decimal"
)

// SettingsSchemaVersion is the current settings blob schema. A stored blob
// with a different version is discarded and replaced with defaults; there is
// no merge migration.
const SettingsSchemaVersion = 3

// Settings is the policy configuration object. It is owned by the settings
// store and passed by value into every calculator call; the calculators never
// mutate it.
type Settings struct {
	SchemaVersion   int               `yaml:"schema_version" json:"schema_version"`
	DearnessPercent decimal.Decimal   `yaml:"dearness_percent" json:"dearness_percent"`
	CityClass       CityClass         `yaml:"city_class" json:"city_class"`
	TPTACity        bool              `yaml:"tpta_city" json:"tpta_city"`
	Multiplier      decimal.Decimal   `yaml:"multiplier" json:"multiplier"`
	AnnualPremium   decimal.Decimal   `yaml:"annual_premium" json:"annual_premium"`
	Strategy        FinancialStrategy `yaml:"strategy" json:"strategy"`
	Method          ComputationMethod `yaml:"method" json:"method"`
	EnforcementMode EnforcementMode   `yaml:"enforcement_mode" json:"enforcement_mode"`
	Housing         *HousingConfig    `yaml:"housing,omitempty" json:"housing,omitempty"`

	// Three-tier benefits resolution: position override shadows level
	// default shadows the global bundle.
	GlobalBenefits   Benefits             `yaml:"global_benefits" json:"global_benefits"`
	LevelBenefits    map[string]Benefits  `yaml:"level_benefits,omitempty" json:"level_benefits,omitempty"`
	PositionBenefits map[int]Benefits     `yaml:"position_benefits,omitempty" json:"position_benefits,omitempty"`

	PremiumRanges map[int]PremiumRange `yaml:"premium_ranges,omitempty" json:"premium_ranges,omitempty"`
	SalaryCaps    map[int]SalaryCap    `yaml:"salary_caps,omitempty" json:"salary_caps,omitempty"`
}

// ResolveBenefits returns the effective benefits bundle for a position:
// position override, then level default, then the global bundle.
func (s *Settings) ResolveBenefits(positionID int, level string) Benefits {
	if b, ok := s.PositionBenefits[positionID]; ok {
		return b
	}
	if b, ok := s.LevelBenefits[level]; ok {
		return b
	}
	return s.GlobalBenefits
}

// PremiumRangeFor returns the configured premium range for a position, or
// nil when none is configured.
func (s *Settings) PremiumRangeFor(positionID int) *PremiumRange {
	if r, ok := s.PremiumRanges[positionID]; ok {
		return &r
	}
	return nil
}

// SalaryCapFor returns the configured salary/CTC caps for a position, or nil
// when none is configured.
func (s *Settings) SalaryCapFor(positionID int) *SalaryCap {
	if c, ok := s.SalaryCaps[positionID]; ok {
		return &c
	}
	return nil
}
