package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/skaranth/facpay/internal/domain"
)

var (
	multiplierStep = decimal.NewFromFloat(0.05)
	premiumStep    = decimal.NewFromInt(50000)
)

// Update handles all key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.positionIdx > 0 {
				m.positionIdx--
				m.recalculate()
			}
		case "down", "j":
			if m.positionIdx < len(m.positions)-1 {
				m.positionIdx++
				m.recalculate()
			}

		case "left", "h":
			if m.cell > 0 {
				m.cell--
				m.recalculate()
			}
		case "right", "l":
			if m.cell < m.maxCell() {
				m.cell++
				m.recalculate()
			}

		case "M":
			m.settings.Multiplier = m.settings.Multiplier.Add(multiplierStep)
			m.recalculate()
		case "m":
			next := m.settings.Multiplier.Sub(multiplierStep)
			if next.GreaterThan(decimal.Zero) {
				m.settings.Multiplier = next
				m.recalculate()
			}

		case "P":
			m.settings.AnnualPremium = m.settings.AnnualPremium.Add(premiumStep)
			m.recalculate()
		case "p":
			next := m.settings.AnnualPremium.Sub(premiumStep)
			if !next.IsNegative() {
				m.settings.AnnualPremium = next
				m.recalculate()
			}

		case "s":
			m.settings.Strategy = nextStrategy(m.settings.Strategy)
			m.recalculate()
		case "t":
			if m.settings.Method == domain.MethodOnTotal {
				m.settings.Method = domain.MethodOnBasic
			} else {
				m.settings.Method = domain.MethodOnTotal
			}
			m.recalculate()
		case "e":
			if m.settings.EnforcementMode == domain.EnforcementSoft {
				m.settings.EnforcementMode = domain.EnforcementHard
			} else {
				m.settings.EnforcementMode = domain.EnforcementSoft
			}
			m.recalculate()
		case "c":
			m.settings.CityClass = nextCity(m.settings.CityClass)
			m.recalculate()
		}
	}

	return m, nil
}

func nextStrategy(s domain.FinancialStrategy) domain.FinancialStrategy {
	order := []domain.FinancialStrategy{
		domain.StrategyMultiplier,
		domain.StrategyPremium,
		domain.StrategyBoth,
		domain.StrategyHigher,
		domain.StrategyLower,
	}
	for i, candidate := range order {
		if candidate == s {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func nextCity(c domain.CityClass) domain.CityClass {
	switch c {
	case domain.CityX:
		return domain.CityY
	case domain.CityY:
		return domain.CityZ
	default:
		return domain.CityX
	}
}
