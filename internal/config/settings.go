// Package config owns the policy-settings blob: defaults, YAML load/save and
// validation. The settings file carries a schema version; a mismatch on load
// discards the stored blob and reverts to defaults (forward-only migration,
// no merge).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/skaranth/facpay/internal/domain"
)

// DefaultSettings returns the reference policy configuration: 58% DA, city
// Y, 1.3 multiplier with both enhancements applied to the total, soft
// enforcement, and a modest global benefits bundle.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		SchemaVersion:   domain.SettingsSchemaVersion,
		DearnessPercent: decimal.NewFromInt(58),
		CityClass:       domain.CityY,
		TPTACity:        false,
		Multiplier:      decimal.NewFromFloat(1.3),
		AnnualPremium:   decimal.NewFromInt(300000),
		Strategy:        domain.StrategyBoth,
		Method:          domain.MethodOnTotal,
		EnforcementMode: domain.EnforcementSoft,
		GlobalBenefits: domain.Benefits{
			Name:                   "standard",
			HousingMonthly:         decimal.Zero,
			ProfessionalDevMonthly: decimal.NewFromInt(2500),
			RetirementFundPercent:  decimal.NewFromInt(12),
			GratuityPercent:        decimal.NewFromFloat(4.81),
			HealthInsuranceMonthly: decimal.NewFromInt(1500),
		},
	}
}

// SettingsStore loads and persists the policy settings blob.
type SettingsStore struct {
	Path string
}

// NewSettingsStore creates a store bound to a settings file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{Path: path}
}

// Load reads the settings file. A missing file or a schema-version mismatch
// yields the defaults; a present, current-version blob is validated before
// being returned.
func (ss *SettingsStore) Load() (domain.Settings, error) {
	data, err := os.ReadFile(ss.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("failed to read settings %s: %w", ss.Path, err)
	}

	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.SchemaVersion != domain.SettingsSchemaVersion {
		// Stale blob: discard and revert to defaults.
		return DefaultSettings(), nil
	}

	if err := ValidateSettings(&settings); err != nil {
		return domain.Settings{}, fmt.Errorf("settings validation failed: %w", err)
	}

	return settings, nil
}

// Save writes the whole settings blob atomically (temp file + rename).
func (ss *SettingsStore) Save(settings domain.Settings) error {
	settings.SchemaVersion = domain.SettingsSchemaVersion

	if err := ValidateSettings(&settings); err != nil {
		return fmt.Errorf("refusing to save invalid settings: %w", err)
	}

	data, err := yaml.Marshal(&settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	dir := filepath.Dir(ss.Path)
	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close settings file: %w", err)
	}

	if err := os.Rename(tmpName, ss.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// ValidateSettings validates a policy configuration.
func ValidateSettings(settings *domain.Settings) error {
	if !settings.CityClass.IsValid() {
		return fmt.Errorf("city class must be X, Y or Z, got %q", settings.CityClass)
	}
	if !settings.Strategy.IsValid() {
		return fmt.Errorf("unknown financial strategy %q", settings.Strategy)
	}
	if !settings.Method.IsValid() {
		return fmt.Errorf("unknown computation method %q", settings.Method)
	}
	if !settings.EnforcementMode.IsValid() {
		return fmt.Errorf("unknown enforcement mode %q", settings.EnforcementMode)
	}
	if settings.DearnessPercent.LessThan(decimal.Zero) {
		return fmt.Errorf("dearness percent cannot be negative")
	}
	if settings.Multiplier.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("multiplier must be positive")
	}
	if settings.AnnualPremium.LessThan(decimal.Zero) {
		return fmt.Errorf("annual premium cannot be negative")
	}

	if err := validateBenefits("global", settings.GlobalBenefits); err != nil {
		return err
	}
	for level, b := range settings.LevelBenefits {
		if err := validateBenefits("level "+level, b); err != nil {
			return err
		}
	}
	for id, b := range settings.PositionBenefits {
		if err := validateBenefits(fmt.Sprintf("position %d", id), b); err != nil {
			return err
		}
	}

	for id, r := range settings.PremiumRanges {
		if r.Min.LessThan(decimal.Zero) || r.Max.LessThan(decimal.Zero) {
			return fmt.Errorf("premium range for position %d cannot be negative", id)
		}
		if r.Max.GreaterThan(decimal.Zero) && r.Min.GreaterThan(r.Max) {
			return fmt.Errorf("premium range for position %d has min above max", id)
		}
	}
	for id, c := range settings.SalaryCaps {
		if c.MinSalaryAnnual.LessThan(decimal.Zero) || c.MaxSalaryAnnual.LessThan(decimal.Zero) || c.MaxCTCAnnual.LessThan(decimal.Zero) {
			return fmt.Errorf("salary cap for position %d cannot be negative", id)
		}
		if c.MaxSalaryAnnual.GreaterThan(decimal.Zero) && c.MinSalaryAnnual.GreaterThan(c.MaxSalaryAnnual) {
			return fmt.Errorf("salary cap for position %d has min above max", id)
		}
	}

	if settings.Housing != nil {
		switch settings.Housing.HRAMode {
		case "", domain.HRANone, domain.HRAPercent, domain.HRALumpSum:
		default:
			return fmt.Errorf("unknown HRA mode %q", settings.Housing.HRAMode)
		}
		if settings.Housing.LumpSumMonthly.LessThan(decimal.Zero) {
			return fmt.Errorf("HRA lump sum cannot be negative")
		}
	}

	return nil
}

func validateBenefits(scope string, b domain.Benefits) error {
	if b.HousingMonthly.LessThan(decimal.Zero) ||
		b.ProfessionalDevMonthly.LessThan(decimal.Zero) ||
		b.HealthInsuranceMonthly.LessThan(decimal.Zero) {
		return fmt.Errorf("%s benefits: monthly amounts cannot be negative", scope)
	}
	if b.RetirementFundPercent.LessThan(decimal.Zero) || b.RetirementFundPercent.GreaterThan(oneHundredPct) {
		return fmt.Errorf("%s benefits: retirement fund percent must be between 0 and 100", scope)
	}
	if b.GratuityPercent.LessThan(decimal.Zero) || b.GratuityPercent.GreaterThan(oneHundredPct) {
		return fmt.Errorf("%s benefits: gratuity percent must be between 0 and 100", scope)
	}
	return nil
}

var oneHundredPct = decimal.NewFromInt(100)
