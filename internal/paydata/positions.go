package paydata

import (
	"github.com/shopspring/decimal"
)

// FacultyPosition is a named role bound to one academic level. The catalog
// is fixed but not closed to extension.
type FacultyPosition struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Level            string           `json:"level"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance,omitempty"` // fixed monthly amount
	ExperienceMin    int              `json:"experience_min"`              // years
	ExperienceMax    int              `json:"experience_max"`              // years
}

func monthly(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var positions = []FacultyPosition{
	{ID: 1, Name: "Assistant Professor", Level: "10", ExperienceMin: 0, ExperienceMax: 4},
	{ID: 2, Name: "Assistant Professor (Senior Scale)", Level: "11", ExperienceMin: 4, ExperienceMax: 9},
	{ID: 3, Name: "Assistant Professor (Selection Grade)", Level: "12", ExperienceMin: 9, ExperienceMax: 12},
	{ID: 4, Name: "Associate Professor", Level: "13A", ExperienceMin: 12, ExperienceMax: 18},
	{ID: 5, Name: "Professor", Level: "14", ExperienceMin: 18, ExperienceMax: 28},
	{ID: 6, Name: "Senior Professor", Level: "15", ExperienceMin: 28, ExperienceMax: 35},
	{ID: 7, Name: "Dean", Level: "14", SpecialAllowance: monthly(3000), ExperienceMin: 20, ExperienceMax: 30},
	{ID: 8, Name: "Vice Principal", Level: "13A", SpecialAllowance: monthly(2000), ExperienceMin: 15, ExperienceMax: 25},
}

// Positions returns the faculty position catalog.
func Positions() []FacultyPosition {
	out := make([]FacultyPosition, len(positions))
	copy(out, positions)
	return out
}

// PositionByID looks up a position by id. The second return is false for
// unknown ids.
func PositionByID(id int) (FacultyPosition, bool) {
	for _, p := range positions {
		if p.ID == id {
			return p, true
		}
	}
	return FacultyPosition{}, false
}

// SuggestCell maps years of experience to a default pay cell for the
// position: one cell per year beyond the position's entry experience,
// clamped to the level's ladder.
func (p FacultyPosition) SuggestCell(experienceYears int) int {
	cell := experienceYears - p.ExperienceMin
	if cell < 0 {
		cell = 0
	}
	if level, ok := LevelByID(p.Level); ok && cell >= level.Cells {
		cell = level.Cells - 1
	}
	return cell
}
