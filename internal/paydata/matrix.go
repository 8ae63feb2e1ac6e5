package paydata

import (
	"github.com/shopspring/decimal"
)

// payMatrix maps level id to its annual-increment ladder of basic pay
// amounts. Built once at init from the rationalised entry pay and the 7th
// CPC increment rule: each cell is the previous cell times 1.03, rounded to
// the nearest 100.
var payMatrix map[string][]decimal.Decimal

var (
	incrementFactor = decimal.NewFromFloat(1.03)
	hundred         = decimal.NewFromInt(100)
)

func init() {
	payMatrix = make(map[string][]decimal.Decimal, len(academicLevels))
	for _, level := range academicLevels {
		cells := make([]decimal.Decimal, level.Cells)
		cells[0] = level.RationalisedEntryPay
		for i := 1; i < level.Cells; i++ {
			cells[i] = nextCell(cells[i-1])
		}
		payMatrix[level.ID] = cells
	}
}

// nextCell applies the annual increment: 3 percent, rounded to the nearest
// hundred rupees.
func nextCell(basic decimal.Decimal) decimal.Decimal {
	return basic.Mul(incrementFactor).Div(hundred).Round(0).Mul(hundred)
}

// BasicPayAt returns the basic pay for a (level, cell) pair. Unknown levels
// and out-of-range cell indexes yield zero rather than an error.
func BasicPayAt(level string, cell int) decimal.Decimal {
	cells, ok := payMatrix[level]
	if !ok || cell < 0 || cell >= len(cells) {
		return decimal.Zero
	}
	return cells[cell]
}

// CellsFor returns the full increment ladder for a level, or nil for an
// unknown level. The returned slice is a copy.
func CellsFor(level string) []decimal.Decimal {
	cells, ok := payMatrix[level]
	if !ok {
		return nil
	}
	out := make([]decimal.Decimal, len(cells))
	copy(out, cells)
	return out
}
