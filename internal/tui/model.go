// Package tui is an interactive explorer for the compensation calculators:
// pick a position and pay cell, steer the policy knobs, and watch the
// statutory and offer breakdowns update live.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

// Model is the full explorer state.
type Model struct {
	engine   *calculation.CalculationEngine
	settings domain.Settings

	positions   []paydata.FacultyPosition
	positionIdx int
	cell        int

	result domain.ComparisonResult
	table  table.Model

	width  int
	height int
}

// NewModel creates the explorer over an engine and a settings snapshot.
func NewModel(engine *calculation.CalculationEngine, settings domain.Settings) Model {
	columns := []table.Column{
		{Title: "Component", Width: 22},
		{Title: "UGC", Width: 12},
		{Title: "Offer", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(false),
	)

	m := Model{
		engine:    engine,
		settings:  settings,
		positions: paydata.Positions(),
		table:     t,
		width:     80,
		height:    24,
	}
	m.recalculate()
	return m
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) position() paydata.FacultyPosition {
	return m.positions[m.positionIdx]
}

func (m *Model) maxCell() int {
	level, ok := paydata.LevelByID(m.position().Level)
	if !ok {
		return 0
	}
	return level.Cells - 1
}

// recalculate reruns the comparison and rebuilds the breakdown table.
func (m *Model) recalculate() {
	if m.cell > m.maxCell() {
		m.cell = m.maxCell()
	}
	m.result = m.engine.CompareAt(m.settings, m.position(), m.cell)
	m.table.SetRows(breakdownRows(m.result))
}

func breakdownRows(result domain.ComparisonResult) []table.Row {
	base := result.Baseline
	enh := result.Enhanced

	rows := []table.Row{
		{"Basic Pay", base.BasicPay.StringFixed(0), enh.BasicPay.StringFixed(0)},
		{"Dearness Allowance", base.DearnessAllowance.StringFixed(0), enh.DearnessAllowance.StringFixed(0)},
		{"House Rent Allowance", base.HouseRentAllowance.StringFixed(0), enh.HouseRentAllowance.StringFixed(0)},
		{"Transport Allowance", base.TransportAllowance.StringFixed(0), enh.TransportAllowance.StringFixed(0)},
	}
	if !base.SpecialAllowance.IsZero() || !enh.SpecialAllowance.IsZero() {
		rows = append(rows, table.Row{"Special Allowance", base.SpecialAllowance.StringFixed(0), enh.SpecialAllowance.StringFixed(0)})
	}
	if !enh.MultiplicativeBonus.IsZero() {
		rows = append(rows, table.Row{"Institutional Bonus", "-", enh.MultiplicativeBonus.StringFixed(0)})
	}
	if !enh.FlatPremiumMonthly.IsZero() {
		rows = append(rows, table.Row{"Flat Premium", "-", enh.FlatPremiumMonthly.StringFixed(0)})
	}
	rows = append(rows,
		table.Row{"Salary / month", base.TotalMonthly.StringFixed(0), enh.TotalSalaryMonthly.StringFixed(0)},
		table.Row{"Benefits / month", "-", enh.Benefits.TotalMonthly.StringFixed(0)},
		table.Row{"CTC / month", "-", enh.TotalCTCMonthly.StringFixed(0)},
		table.Row{"Annual", base.TotalAnnual.StringFixed(0), enh.TotalCTCAnnual.StringFixed(0)},
	)
	return rows
}
