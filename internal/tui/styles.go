package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true)

	userLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	botLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)
