// Package calculation implements the salary/CTC computation pipeline. Every
// function here is a deterministic pure function of its explicit inputs:
// there is no I/O, no shared state and no error path. Invalid lookups
// degrade to zero values and violations surface as enforcement flags.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

var (
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
	one        = decimal.NewFromInt(1)
)

// BaselineInput carries everything the statutory calculator needs.
type BaselineInput struct {
	BasicPay         decimal.Decimal
	DearnessPercent  decimal.Decimal
	City             domain.CityClass
	Level            string
	SpecialAllowance decimal.Decimal
	TPTACity         bool
	Housing          *domain.HousingConfig
}

// CalculateDA computes the dearness allowance: round(basic * pct / 100).
// Rounding is half away from zero, applied at this stage, not at the total.
func CalculateDA(basic, percent decimal.Decimal) decimal.Decimal {
	return basic.Mul(percent).Div(oneHundred).Round(0)
}

// CalculateHRA computes the house rent allowance and its mode tag. When
// housing is provided without continuing HRA the amount is zero; lump-sum
// mode pays the configured amount; otherwise the city-rate percentage of
// basic applies.
func CalculateHRA(basic decimal.Decimal, city domain.CityClass, housing *domain.HousingConfig) (decimal.Decimal, domain.HRAMode) {
	if housing != nil {
		if housing.ProvidingHousing && !housing.StillProvideHRA {
			return decimal.Zero, domain.HRANone
		}
		if housing.HRAMode == domain.HRALumpSum {
			return housing.LumpSumMonthly, domain.HRALumpSum
		}
	}
	rate := paydata.HRARate(city)
	return basic.Mul(rate).Div(oneHundred).Round(0), domain.HRAPercent
}

// CalculateTA computes the transport allowance: the fixed bracket base for
// the level and city tier, plus dearness allowance on that base.
func CalculateTA(level string, tptaCity bool, dearnessPercent decimal.Decimal) decimal.Decimal {
	base := paydata.TABase(level, tptaCity)
	return base.Add(CalculateDA(base, dearnessPercent))
}

// CalculateBaseline computes the statutory (UGC) salary breakdown.
func CalculateBaseline(in BaselineInput) domain.SalaryBreakdown {
	da := CalculateDA(in.BasicPay, in.DearnessPercent)
	hra, hraMode := CalculateHRA(in.BasicPay, in.City, in.Housing)
	ta := CalculateTA(in.Level, in.TPTACity, in.DearnessPercent)

	total := in.BasicPay.Add(da).Add(hra).Add(ta).Add(in.SpecialAllowance)

	return domain.SalaryBreakdown{
		BasicPay:           in.BasicPay,
		DearnessAllowance:  da,
		HouseRentAllowance: hra,
		HRAMode:            hraMode,
		TransportAllowance: ta,
		SpecialAllowance:   in.SpecialAllowance,
		TotalMonthly:       total,
		TotalAnnual:        total.Mul(twelve),
	}
}
