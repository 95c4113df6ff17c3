package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Section header with underline
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Verdict indicators
	StatusPass = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusFail = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	StatusSkip = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	// Muted secondary text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Numeric values
	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	bannerPass = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#00ff88")).
			Padding(0, 3)

	bannerFail = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#ff4444")).
			Padding(0, 3)
)

// Banner renders the overall pass/fail box.
func Banner(text string, pass bool) string {
	if pass {
		return bannerPass.Render(text)
	}
	return bannerFail.Render(text)
}

// Rule returns a horizontal separator.
func Rule(width int) string {
	return Subtle.Render(strings.Repeat("─", width))
}
