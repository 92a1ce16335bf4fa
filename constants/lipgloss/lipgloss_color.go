package lipgloss

import "github.com/charmbracelet/lipgloss"

// Shared terminal styles used across commands and output helpers.
var (
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	BlueSky = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Bold(true)

	// BoxStyle frames summary output like the stats box.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 1)
)
