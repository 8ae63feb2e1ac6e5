package paydata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skaranth/facpay/internal/domain"
)

func TestLevels_EntryPays(t *testing.T) {
	tests := []struct {
		level    string
		entryPay int64
		cells    int
	}{
		{"10", 57700, 40},
		{"11", 68900, 37},
		{"12", 79800, 34},
		{"13A", 131400, 25},
		{"14", 144200, 22},
		{"15", 182200, 12},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			level, ok := LevelByID(tt.level)
			assert.True(t, ok, "Level should exist")
			assert.True(t, level.RationalisedEntryPay.Equal(decimal.NewFromInt(tt.entryPay)),
				"Entry pay should match, got %s", level.RationalisedEntryPay)
			assert.Equal(t, tt.cells, level.Cells, "Cell count should match")

			assert.True(t, BasicPayAt(tt.level, 0).Equal(decimal.NewFromInt(tt.entryPay)),
				"Cell 0 should equal entry pay")
		})
	}
}

func TestPayMatrix_LaddersStrictlyIncreasing(t *testing.T) {
	for _, level := range Levels() {
		cells := CellsFor(level.ID)
		assert.Len(t, cells, level.Cells, "Ladder length should match cell count for level %s", level.ID)
		for i := 1; i < len(cells); i++ {
			assert.True(t, cells[i].GreaterThan(cells[i-1]),
				"Level %s cell %d (%s) should exceed cell %d (%s)",
				level.ID, i, cells[i], i-1, cells[i-1])
		}
	}
}

func TestPayMatrix_CellProgression(t *testing.T) {
	// Each cell is the previous times 1.03, rounded to the nearest 100.
	// 57700 * 1.03 = 59431 -> 59400.
	assert.True(t, BasicPayAt("10", 1).Equal(decimal.NewFromInt(59400)),
		"Level 10 cell 1 should round to the nearest hundred, got %s", BasicPayAt("10", 1))
}

func TestBasicPayAt_UnknownInputs(t *testing.T) {
	assert.True(t, BasicPayAt("99", 0).IsZero(), "Unknown level should yield zero")
	assert.True(t, BasicPayAt("10", -1).IsZero(), "Negative cell should yield zero")
	assert.True(t, BasicPayAt("10", 40).IsZero(), "Out-of-range cell should yield zero")
	assert.True(t, BasicPayAt("15", 12).IsZero(), "Cell past the last should yield zero")
}

func TestLevelNumeric(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"10", 10},
		{"13A", 13},
		{"15", 15},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelNumeric(tt.id), "LevelNumeric(%q)", tt.id)
	}
}

func TestHRARate(t *testing.T) {
	assert.True(t, HRARate(domain.CityX).Equal(decimal.NewFromInt(30)))
	assert.True(t, HRARate(domain.CityY).Equal(decimal.NewFromInt(20)))
	assert.True(t, HRARate(domain.CityZ).Equal(decimal.NewFromInt(10)))
	assert.True(t, HRARate(domain.CityClass("Q")).IsZero(), "Unknown city should yield zero")
}

func TestTABase_Brackets(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		tptaCity bool
		want     int64
	}{
		{"level 10 TPTA city", "10", true, 7200},
		{"level 10 other city", "10", false, 3600},
		{"level 13A TPTA city", "13A", true, 7200},
		{"level 5 TPTA city", "5", true, 3600},
		{"level 5 other city", "5", false, 1800},
		{"level 2 TPTA city", "2", true, 1350},
		{"level 2 other city", "2", false, 900},
		{"unknown level", "garbage", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TABase(tt.level, tt.tptaCity)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"TA base should be %d, got %s", tt.want, got)
		})
	}
}

func TestPositions_Catalog(t *testing.T) {
	positions := Positions()
	assert.Len(t, positions, 8, "Catalog should have eight positions")

	dean, ok := PositionByID(7)
	assert.True(t, ok)
	assert.Equal(t, "Dean", dean.Name)
	assert.Equal(t, "14", dean.Level)
	assert.NotNil(t, dean.SpecialAllowance)
	assert.True(t, dean.SpecialAllowance.Equal(decimal.NewFromInt(3000)))

	_, ok = PositionByID(99)
	assert.False(t, ok, "Unknown id should miss")
}

func TestSuggestCell(t *testing.T) {
	position, ok := PositionByID(2) // Senior Scale, experience 4-9, level 11 (37 cells)
	assert.True(t, ok)

	tests := []struct {
		name       string
		experience int
		want       int
	}{
		{"below range clamps to zero", 2, 0},
		{"start of range", 4, 0},
		{"within range", 7, 3},
		{"past range keeps counting", 12, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, position.SuggestCell(tt.experience))
		})
	}

	senior, ok := PositionByID(6) // level 15, 12 cells
	assert.True(t, ok)
	assert.Equal(t, 11, senior.SuggestCell(100), "Suggestion should clamp to the last cell")
}
