package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the explorer.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Faculty Compensation Explorer"))
	sb.WriteString("\n\n")

	left := m.renderPositionList()
	right := PanelStyle.Render(m.table.View() + "\n" + m.renderSummary())

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	sb.WriteString("\n")
	sb.WriteString(m.renderParameters())
	sb.WriteString("\n")
	sb.WriteString(StatusBarStyle.Render(
		"↑/↓ position  ←/→ cell  m/M multiplier  p/P premium  s strategy  t method  e enforcement  c city  q quit"))

	return sb.String()
}

func (m Model) renderPositionList() string {
	var sb strings.Builder
	for i, p := range m.positions {
		line := fmt.Sprintf("%s (L%s)", p.Name, p.Level)
		if i == m.positionIdx {
			sb.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			sb.WriteString(UnselectedItemStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return PanelStyle.Render(sb.String())
}

func (m Model) renderSummary() string {
	var sb strings.Builder

	premium := m.result.PremiumAmountMonthly
	style := PremiumPositiveStyle
	if premium.IsNegative() {
		style = PremiumNegativeStyle
	}
	sb.WriteString(fmt.Sprintf("Premium: %s (%s%%)",
		style.Render("Rs "+premium.StringFixed(0)+"/mo"),
		m.result.PremiumPercentage.StringFixed(1)))

	if m.result.Enhanced.Enforcement.Violated() {
		sb.WriteString("  " + WarningStyle.Render("[policy flags]"))
	}
	return sb.String()
}

func (m Model) renderParameters() string {
	label := ParameterLabelStyle.Render
	value := ParameterValueStyle.Render

	parts := []string{
		label("cell ") + value(fmt.Sprintf("%d/%d", m.cell, m.maxCell())),
		label("mult ") + value(m.settings.Multiplier.StringFixed(2)),
		label("premium ") + value(m.settings.AnnualPremium.StringFixed(0)),
		label("strategy ") + value(string(m.settings.Strategy)),
		label("method ") + value(string(m.settings.Method)),
		label("enforce ") + value(string(m.settings.EnforcementMode)),
		label("city ") + value(string(m.settings.CityClass)),
		label("DA ") + value(m.settings.DearnessPercent.StringFixed(0)+"%"),
	}
	return StatusBarStyle.Render(strings.Join(parts, "  "))
}
