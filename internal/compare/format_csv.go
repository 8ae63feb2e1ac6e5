package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats a comparison set as CSV
type CSVFormatter struct{}

// Format generates CSV output for a comparison set
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Position ID",
		"Position",
		"Level",
		"Cell",
		"Baseline Monthly",
		"Baseline Annual",
		"Enhanced Salary Monthly",
		"Enhanced CTC Monthly",
		"Enhanced CTC Annual",
		"Premium Monthly",
		"Premium Annual",
		"Premium %",
		"Policy Violated",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range set.Rows {
		if err := writer.Write(cf.formatRow(&row)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a position comparison as a CSV row
func (cf *CSVFormatter) formatRow(row *PositionComparison) []string {
	return []string{
		formatInt(row.PositionID),
		row.PositionName,
		row.Level,
		formatInt(row.Cell),
		row.BaselineMonthly.StringFixed(2),
		row.Result.Baseline.TotalAnnual.StringFixed(2),
		row.Result.Enhanced.TotalSalaryMonthly.StringFixed(2),
		row.EnhancedCTCMonthly.StringFixed(2),
		row.Result.Enhanced.TotalCTCAnnual.StringFixed(2),
		row.PremiumMonthly.StringFixed(2),
		row.PremiumAnnual.StringFixed(2),
		row.PremiumPercent.StringFixed(2),
		fmt.Sprintf("%t", row.PolicyViolated),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
