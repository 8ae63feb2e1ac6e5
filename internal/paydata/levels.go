// Package paydata holds the static pay-scale reference data: the 7th CPC
// academic pay matrix, level metadata, city classification rates, transport
// allowance brackets and the faculty position catalog. Everything here is
// loaded once and consumed read-only.
package paydata

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// AcademicLevel is immutable reference metadata for one academic pay level.
type AcademicLevel struct {
	ID                   string           `json:"id"`
	AGP                  *decimal.Decimal `json:"agp,omitempty"` // 6th CPC academic grade pay; nil for HAG levels
	PayBand              string           `json:"pay_band"`
	EntryPay             decimal.Decimal  `json:"entry_pay"`
	RationalisedEntryPay decimal.Decimal  `json:"rationalised_entry_pay"`
	IndexOfRationalisation decimal.Decimal `json:"index_of_rationalisation"`
	Cells                int              `json:"cells"`
}

func agp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var academicLevels = []AcademicLevel{
	{ID: "10", AGP: agp(6000), PayBand: "PB-3 (15600-39100)", EntryPay: decimal.NewFromInt(21600), RationalisedEntryPay: decimal.NewFromInt(57700), IndexOfRationalisation: decimal.NewFromFloat(2.67), Cells: 40},
	{ID: "11", AGP: agp(7000), PayBand: "PB-3 (15600-39100)", EntryPay: decimal.NewFromInt(25790), RationalisedEntryPay: decimal.NewFromInt(68900), IndexOfRationalisation: decimal.NewFromFloat(2.67), Cells: 37},
	{ID: "12", AGP: agp(8000), PayBand: "PB-3 (15600-39100)", EntryPay: decimal.NewFromInt(29900), RationalisedEntryPay: decimal.NewFromInt(79800), IndexOfRationalisation: decimal.NewFromFloat(2.67), Cells: 34},
	{ID: "13A", AGP: agp(9000), PayBand: "PB-4 (37400-67000)", EntryPay: decimal.NewFromInt(49200), RationalisedEntryPay: decimal.NewFromInt(131400), IndexOfRationalisation: decimal.NewFromFloat(2.67), Cells: 25},
	{ID: "14", AGP: agp(10000), PayBand: "PB-4 (37400-67000)", EntryPay: decimal.NewFromInt(53000), RationalisedEntryPay: decimal.NewFromInt(144200), IndexOfRationalisation: decimal.NewFromFloat(2.72), Cells: 22},
	{ID: "15", AGP: nil, PayBand: "HAG (67000-79000)", EntryPay: decimal.NewFromInt(67000), RationalisedEntryPay: decimal.NewFromInt(182200), IndexOfRationalisation: decimal.NewFromFloat(2.72), Cells: 12},
}

// Levels returns the academic level metadata list in ascending order.
func Levels() []AcademicLevel {
	out := make([]AcademicLevel, len(academicLevels))
	copy(out, academicLevels)
	return out
}

// LevelByID looks up a level by identifier. The second return is false for
// unknown levels.
func LevelByID(id string) (AcademicLevel, bool) {
	for _, l := range academicLevels {
		if l.ID == id {
			return l, true
		}
	}
	return AcademicLevel{}, false
}

// LevelNumeric converts a level identifier to its numeric value for bracket
// comparisons. Suffixed levels compare as their numeric prefix, so "13A" is
// treated as 13. Unknown identifiers yield 0.
func LevelNumeric(id string) int {
	digits := id
	for i, r := range id {
		if r < '0' || r > '9' {
			digits = id[:i]
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
