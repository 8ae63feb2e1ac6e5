// Package compare assembles per-position comparison rows and renders them
// as console tables, JSON or CSV.
package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

// PositionComparison is a single catalog position compared at a chosen pay
// cell, with the key metrics lifted out of the full result for display.
type PositionComparison struct {
	PositionID   int    `json:"positionId"`
	PositionName string `json:"positionName"`
	Level        string `json:"level"`
	Cell         int    `json:"cell"`

	Result domain.ComparisonResult `json:"result"`

	// Key metrics
	BaselineMonthly    decimal.Decimal `json:"baselineMonthly"`
	EnhancedCTCMonthly decimal.Decimal `json:"enhancedCtcMonthly"`
	PremiumMonthly     decimal.Decimal `json:"premiumMonthly"`
	PremiumAnnual      decimal.Decimal `json:"premiumAnnual"`
	PremiumPercent     decimal.Decimal `json:"premiumPercent"`
	PolicyViolated     bool            `json:"policyViolated"`
}

// ComparisonSet is the comparison for the whole catalog at a given level of
// experience, plus derived callouts.
type ComparisonSet struct {
	ExperienceYears int                  `json:"experienceYears"`
	Rows            []PositionComparison `json:"rows"`
	BestPositionID  int                  `json:"bestPositionId"`
	Callouts        []string             `json:"callouts"`
}

// BuildComparisonSet compares every catalog position at the pay cell its
// experience range suggests and ranks the rows by enhanced CTC.
func BuildComparisonSet(engine *calculation.CalculationEngine, settings domain.Settings, experienceYears int) *ComparisonSet {
	set := &ComparisonSet{ExperienceYears: experienceYears}

	best := decimal.Zero
	for _, position := range paydata.Positions() {
		cell := position.SuggestCell(experienceYears)
		result := engine.CompareAt(settings, position, cell)

		row := PositionComparison{
			PositionID:         position.ID,
			PositionName:       position.Name,
			Level:              position.Level,
			Cell:               cell,
			Result:             result,
			BaselineMonthly:    result.Baseline.TotalMonthly,
			EnhancedCTCMonthly: result.Enhanced.TotalCTCMonthly,
			PremiumMonthly:     result.PremiumAmountMonthly,
			PremiumAnnual:      result.PremiumAmountAnnual,
			PremiumPercent:     result.PremiumPercentage,
			PolicyViolated:     result.Enhanced.Enforcement.Violated(),
		}
		set.Rows = append(set.Rows, row)

		if row.EnhancedCTCMonthly.GreaterThan(best) {
			best = row.EnhancedCTCMonthly
			set.BestPositionID = position.ID
		}
	}

	set.Callouts = generateCallouts(set)
	return set
}

// generateCallouts derives short human-readable observations from the set.
func generateCallouts(set *ComparisonSet) []string {
	callouts := []string{}

	var best *PositionComparison
	for i := range set.Rows {
		if set.Rows[i].PositionID == set.BestPositionID {
			best = &set.Rows[i]
		}
	}
	if best != nil {
		callouts = append(callouts, fmt.Sprintf(
			"Highest offer: %s at cell %d, CTC Rs %s/month (%s%% over statutory pay)",
			best.PositionName, best.Cell,
			best.EnhancedCTCMonthly.StringFixed(0),
			best.PremiumPercent.StringFixed(1)))
	}

	violations := 0
	for _, row := range set.Rows {
		if row.PolicyViolated {
			violations++
		}
	}
	if violations > 0 {
		callouts = append(callouts, fmt.Sprintf(
			"%d of %d positions trip a range policy at the current settings",
			violations, len(set.Rows)))
	}

	return callouts
}
