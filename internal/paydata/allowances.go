package paydata

import (
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// HRA percentage rates by city classification.
var hraRates = map[domain.CityClass]decimal.Decimal{
	domain.CityX: decimal.NewFromInt(30),
	domain.CityY: decimal.NewFromInt(20),
	domain.CityZ: decimal.NewFromInt(10),
}

// HRARate returns the HRA percentage for a city classification. Unknown
// classifications yield zero.
func HRARate(city domain.CityClass) decimal.Decimal {
	if rate, ok := hraRates[city]; ok {
		return rate
	}
	return decimal.Zero
}

// taBracket holds the fixed monthly transport allowance base amounts for one
// pay-level band.
type taBracket struct {
	minLevel  int
	tptaCity  decimal.Decimal
	otherCity decimal.Decimal
}

// Brackets are ordered highest band first; the first bracket whose minLevel
// the numeric level meets applies.
var taBrackets = []taBracket{
	{minLevel: 9, tptaCity: decimal.NewFromInt(7200), otherCity: decimal.NewFromInt(3600)},
	{minLevel: 3, tptaCity: decimal.NewFromInt(3600), otherCity: decimal.NewFromInt(1800)},
	{minLevel: 1, tptaCity: decimal.NewFromInt(1350), otherCity: decimal.NewFromInt(900)},
}

// TABase returns the fixed transport allowance base for a level and city
// tier. Level "13A" compares as numeric 13. Levels below 1 yield zero.
func TABase(level string, tptaCity bool) decimal.Decimal {
	numeric := LevelNumeric(level)
	for _, bracket := range taBrackets {
		if numeric >= bracket.minLevel {
			if tptaCity {
				return bracket.tptaCity
			}
			return bracket.otherCity
		}
	}
	return decimal.Zero
}
