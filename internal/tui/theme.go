package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#f7f7f7"
	colorMuted   lipgloss.Color = "#a8a8a8"
	colorBorder  lipgloss.Color = "#77216f"
	colorAccent  lipgloss.Color = "#e95420"
	colorError   lipgloss.Color = "#c7162b"
	colorSurface lipgloss.Color = "#2c001e"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerHintStyle = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError)
	footerStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 2)
	listBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	selectedStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	currentMark     = lipgloss.NewStyle().Foreground(colorAccent)
)
