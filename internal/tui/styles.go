package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("4")
	colorGreen  = lipgloss.Color("2")
	colorRed    = lipgloss.Color("1")
	colorYellow = lipgloss.Color("3")
	colorGrey   = lipgloss.Color("8")
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(colorGrey)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGrey)
	yellowStyle = lipgloss.NewStyle().Foreground(colorYellow)
	greenStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	redStyle    = lipgloss.NewStyle().Foreground(colorRed)

	crumbStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	headerStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Background(colorGreen).
				Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"})

	promptStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)
