package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset used by the session view.
var (
	colorSurface = lipgloss.Color("#313244")
	colorOverlay = lipgloss.Color("#6c7086")
	colorSubtext = lipgloss.Color("#a6adc8")
	colorText    = lipgloss.Color("#cdd6f4")
	colorSky     = lipgloss.Color("#89dceb")
	colorGreen   = lipgloss.Color("#a6e3a1")
	colorPeach   = lipgloss.Color("#fab387")
	colorRed     = lipgloss.Color("#f38ba8")
	colorMauve   = lipgloss.Color("#cba6f7")
)

var (
	contentBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorOverlay)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorText).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Background(colorMauve).
			Foreground(colorSurface).
			Bold(true).
			Padding(0, 1)

	connectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	disconnectedStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	rxStyle = lipgloss.NewStyle().
		Foreground(colorSky).
		Bold(true)

	txStyle = lipgloss.NewStyle().
		Foreground(colorPeach).
		Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOverlay).
			Padding(1, 2).
			Margin(1, 0)
)
