package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// CalculateBenefits monetises a benefits bundle against a basic pay.
// Retirement fund and gratuity are percentages of basic, rounded at this
// stage; the rest are flat monthly amounts. Pure, no branching.
func CalculateBenefits(basic decimal.Decimal, bundle domain.Benefits) domain.BenefitsBreakdown {
	retirement := basic.Mul(bundle.RetirementFundPercent).Div(oneHundred).Round(0)
	gratuity := basic.Mul(bundle.GratuityPercent).Div(oneHundred).Round(0)

	total := bundle.HousingMonthly.
		Add(bundle.ProfessionalDevMonthly).
		Add(retirement).
		Add(gratuity).
		Add(bundle.HealthInsuranceMonthly)

	return domain.BenefitsBreakdown{
		Housing:         bundle.HousingMonthly,
		ProfessionalDev: bundle.ProfessionalDevMonthly,
		RetirementFund:  retirement,
		Gratuity:        gratuity,
		HealthInsurance: bundle.HealthInsuranceMonthly,
		TotalMonthly:    total,
		TotalAnnual:     total.Mul(twelve),
	}
}
