package botlist

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	botID      lipgloss.Style
	detail     lipgloss.Style
	empty      lipgloss.Style
	ready      lipgloss.Style
	pending    lipgloss.Style
	processing lipgloss.Style
	failed     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		botID:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true),
		ready:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		processing: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		failed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
