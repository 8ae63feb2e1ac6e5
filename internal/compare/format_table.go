package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

// TableFormatter formats a comparison set as a console table
type TableFormatter struct{}

// Format generates a formatted table across catalog positions
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("FACULTY COMPENSATION COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 86) + "\n")
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", set.ExperienceYears))
	sb.WriteString("\n")

	// Column widths
	nameWidth := 30
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %5s %*s %*s %*s %6s\n",
		nameWidth, "Position",
		"Cell",
		numWidth, "UGC /mo",
		numWidth, "Offer /mo",
		numWidth, "Premium /mo",
		"Pct"))
	sb.WriteString(strings.Repeat("-", 86) + "\n")

	for _, row := range set.Rows {
		sb.WriteString(tf.formatRow(&row, nameWidth, numWidth, row.PositionID == set.BestPositionID))
	}

	sb.WriteString(strings.Repeat("=", 86) + "\n")

	if len(set.Callouts) > 0 {
		sb.WriteString("\nNOTES\n")
		sb.WriteString(strings.Repeat("-", 86) + "\n")
		for _, callout := range set.Callouts {
			sb.WriteString(fmt.Sprintf("* %s\n", callout))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single position row
func (tf *TableFormatter) formatRow(row *PositionComparison, nameWidth, numWidth int, isBest bool) string {
	name := row.PositionName
	if isBest {
		name += " *"
	}
	if row.PolicyViolated {
		name += " !"
	}

	return fmt.Sprintf("%-*s %5d %*s %*s %*s %5s%%\n",
		nameWidth, tf.truncate(name, nameWidth),
		row.Cell,
		numWidth, tf.formatDecimal(row.BaselineMonthly),
		numWidth, tf.formatDecimal(row.EnhancedCTCMonthly),
		numWidth, tf.formatDecimal(row.PremiumMonthly),
		row.PremiumPercent.StringFixed(1))
}

// formatDecimal formats an amount for display, switching to lakh and crore
// units for large values.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
		crores := d.Div(decimal.NewFromInt(10000000))
		return crores.StringFixed(2) + "Cr"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		lakhs := d.Div(decimal.NewFromInt(100000))
		return lakhs.StringFixed(2) + "L"
	}
	return d.StringFixed(0)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatDetail renders an expanded single-position breakdown with the
// statutory and enhanced columns side by side.
func (tf *TableFormatter) FormatDetail(row *PositionComparison) string {
	var sb strings.Builder

	base := row.Result.Baseline
	enh := row.Result.Enhanced

	sb.WriteString(fmt.Sprintf("%s (level %s, cell %d)\n", row.PositionName, row.Level, row.Cell))
	sb.WriteString(strings.Repeat("=", 58) + "\n")
	sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", "Component", "UGC", "Offer"))
	sb.WriteString(strings.Repeat("-", 58) + "\n")

	line := func(label string, a, b decimal.Decimal) {
		sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", label, a.StringFixed(0), b.StringFixed(0)))
	}
	line("Basic Pay", base.BasicPay, enh.BasicPay)
	line("Dearness Allowance", base.DearnessAllowance, enh.DearnessAllowance)
	line("House Rent Allowance", base.HouseRentAllowance, enh.HouseRentAllowance)
	line("Transport Allowance", base.TransportAllowance, enh.TransportAllowance)
	if !base.SpecialAllowance.IsZero() || !enh.SpecialAllowance.IsZero() {
		line("Special Allowance", base.SpecialAllowance, enh.SpecialAllowance)
	}
	if !enh.MultiplicativeBonus.IsZero() {
		sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", "Institutional Bonus", "-", enh.MultiplicativeBonus.StringFixed(0)))
	}
	if !enh.FlatPremiumMonthly.IsZero() {
		sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", "Flat Premium", "-", enh.FlatPremiumMonthly.StringFixed(0)))
	}
	sb.WriteString(strings.Repeat("-", 58) + "\n")
	line("Salary / month", base.TotalMonthly, enh.TotalSalaryMonthly)
	sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", "Benefits / month", "-", enh.Benefits.TotalMonthly.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("%-24s %15s %15s\n", "CTC / month", "-", enh.TotalCTCMonthly.StringFixed(0)))
	line("Annual", base.TotalAnnual, enh.TotalCTCAnnual)
	sb.WriteString(strings.Repeat("=", 58) + "\n")

	sb.WriteString(fmt.Sprintf("Premium: Rs %s/month (Rs %s/year, %s%%)\n",
		row.PremiumMonthly.StringFixed(0),
		row.PremiumAnnual.StringFixed(0),
		row.PremiumPercent.StringFixed(1)))

	if enh.Enforcement.Violated() {
		sb.WriteString("\nPOLICY FLAGS\n")
		for _, flag := range enforcementFlags(enh.Enforcement) {
			sb.WriteString(fmt.Sprintf("* %s\n", flag))
		}
	}

	return sb.String()
}

func enforcementFlags(status domain.EnforcementStatus) []string {
	flags := []string{}
	if status.SalaryCapped {
		flags = append(flags, fmt.Sprintf("salary clamped to the cap (was Rs %s/year)",
			status.OriginalSalaryAnnual.StringFixed(0)))
	}
	if status.SalaryBelowMin {
		flags = append(flags, "salary is below the configured minimum")
	}
	if status.CTCCapped {
		flags = append(flags, fmt.Sprintf("CTC clamped to the cap (was Rs %s/year)",
			status.OriginalCTCAnnual.StringFixed(0)))
	}
	if status.PremiumBelowMin {
		flags = append(flags, "flat premium is below the configured minimum")
	}
	if status.PremiumAboveMax {
		flags = append(flags, "flat premium exceeds the configured maximum")
	}
	return flags
}
