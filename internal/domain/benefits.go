package domain

import (
	"github.com/shopspring/decimal"
)

// Benefits is a named bundle of institutional benefits. Housing,
// professional development and health insurance are flat monthly amounts;
// retirement fund and gratuity are percentages of basic pay.
type Benefits struct {
	Name                    string          `yaml:"name,omitempty" json:"name,omitempty"`
	HousingMonthly          decimal.Decimal `yaml:"housing_monthly" json:"housing_monthly"`
	ProfessionalDevMonthly  decimal.Decimal `yaml:"professional_dev_monthly" json:"professional_dev_monthly"`
	RetirementFundPercent   decimal.Decimal `yaml:"retirement_fund_percent" json:"retirement_fund_percent"`
	GratuityPercent         decimal.Decimal `yaml:"gratuity_percent" json:"gratuity_percent"`
	HealthInsuranceMonthly  decimal.Decimal `yaml:"health_insurance_monthly" json:"health_insurance_monthly"`
}

// BenefitsBreakdown is the monetised form of a Benefits bundle for a given
// basic pay. All amounts are monthly except TotalAnnual.
type BenefitsBreakdown struct {
	Housing          decimal.Decimal `json:"housing"`
	ProfessionalDev  decimal.Decimal `json:"professional_dev"`
	RetirementFund   decimal.Decimal `json:"retirement_fund"`
	Gratuity         decimal.Decimal `json:"gratuity"`
	HealthInsurance  decimal.Decimal `json:"health_insurance"`
	TotalMonthly     decimal.Decimal `json:"total_monthly"`
	TotalAnnual      decimal.Decimal `json:"total_annual"`
}

// HousingConfig governs the three-way branch in HRA computation: no HRA when
// housing is provided without continuing HRA, a fixed lump sum, or the
// default percentage of basic.
type HousingConfig struct {
	ProvidingHousing bool            `yaml:"providing_housing" json:"providing_housing"`
	StillProvideHRA  bool            `yaml:"still_provide_hra" json:"still_provide_hra"`
	HRAMode          HRAMode         `yaml:"hra_mode" json:"hra_mode"`
	LumpSumMonthly   decimal.Decimal `yaml:"lump_sum_monthly" json:"lump_sum_monthly"`
}
