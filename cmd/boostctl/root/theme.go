package root

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	keyStyle   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
	goldStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func heading(title string) string {
	return titleStyle.Render(title)
}

func labelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", keyStyle.Render(label+":"), value)
}

// severityText colours a notification type.
func severityText(severity string) string {
	switch severity {
	case "success":
		return goodStyle.Render(severity)
	case "error":
		return badStyle.Render(severity)
	case "warning":
		return warnStyle.Render(severity)
	default:
		return mutedStyle.Render(severity)
	}
}
