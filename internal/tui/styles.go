package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("62")
	ColorAccent  = lipgloss.Color("205")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true)

	PremiumPositiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	PremiumNegativeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)
