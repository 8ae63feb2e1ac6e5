package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// ProjectionInput carries the fitment projection inputs. NextDearnessPercent
// is the dearness rate expected at the start of the next pay-commission
// cycle, typically near zero because the commission folds DA into basic.
type ProjectionInput struct {
	Baseline            domain.SalaryBreakdown
	FitmentFactor       decimal.Decimal
	NextDearnessPercent decimal.Decimal
	City                domain.CityClass
	Level               string
	SpecialAllowance    decimal.Decimal
	TPTACity            bool
	Housing             *domain.HousingConfig
}

// ProjectNextCommission derives a projected next-pay-commission breakdown by
// scaling basic pay with the fitment factor and recomputing DA, HRA and TA
// from the new basic, then reports the percentage uplift versus the current
// baseline total.
func ProjectNextCommission(in ProjectionInput) domain.ProjectionResult {
	projectedBasic := in.Baseline.BasicPay.Mul(in.FitmentFactor).Round(0)

	projected := CalculateBaseline(BaselineInput{
		BasicPay:         projectedBasic,
		DearnessPercent:  in.NextDearnessPercent,
		City:             in.City,
		Level:            in.Level,
		SpecialAllowance: in.SpecialAllowance,
		TPTACity:         in.TPTACity,
		Housing:          in.Housing,
	})

	uplift := decimal.Zero
	if !in.Baseline.TotalMonthly.IsZero() {
		uplift = projected.TotalMonthly.Sub(in.Baseline.TotalMonthly).
			Div(in.Baseline.TotalMonthly).
			Mul(oneHundred)
	}

	return domain.ProjectionResult{
		Projected:     projected,
		FitmentFactor: in.FitmentFactor,
		UpliftPercent: uplift,
	}
}
