// Package chatview renders a chat transcript for the terminal.
package chatview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

type styles struct {
	user      lipgloss.Style
	assistant lipgloss.Style
	errLine   lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		errLine:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}

// Render lays out the transcript oldest-first, with the session error (if
// any) on the last line.
func Render(messages []domain.Message, errMsg string) string {
	s := newStyles()

	if len(messages) == 0 && errMsg == "" {
		return s.empty.Render("Ask anything about the website.")
	}

	lines := make([]string, 0, len(messages)+1)
	for _, message := range messages {
		switch message.Role {
		case domain.MessageRoleUser:
			lines = append(lines, s.user.Render("you> ")+message.Content)
		default:
			lines = append(lines, s.assistant.Render("bot> "+message.Content))
		}
	}

	if errMsg != "" {
		lines = append(lines, s.errLine.Render(errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderMessage renders a single message line, for incremental output.
func RenderMessage(message domain.Message) string {
	return Render([]domain.Message{message}, "")
}
