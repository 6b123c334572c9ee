// Package botlist renders the bot list for the terminal.
package botlist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

type RenderOptions struct {
	Title string
	// ShowOwner includes owner email and message count, the admin view.
	ShowOwner bool
	Now       time.Time
}

func Render(bots []domain.Bot, opts RenderOptions) string {
	s := newStyles()

	title := opts.Title
	if title == "" {
		title = "Your Bots"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("bots: %d", len(bots))),
	}

	if len(bots) == 0 {
		lines = append(lines, s.empty.Render("No bots yet. Create one with: w2c bots create --url <website>"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, bot := range bots {
		lines = append(lines, "", s.botID.Render(string(bot.ID)))
		lines = append(lines, s.detail.Render(fmt.Sprintf("  website:  %s", bot.WebsiteURL)))
		lines = append(lines, fmt.Sprintf("  status:   %s", renderStatus(s, bot.Status)))
		if opts.ShowOwner {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  owner:    %s", bot.OwnerEmail)))
			lines = append(lines, s.detail.Render(fmt.Sprintf("  messages: %d", bot.MessageCount)))
		}
		if !bot.CreatedAt.IsZero() {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  created:  %s", renderAge(bot.CreatedAt, opts.Now))))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderAge appends a coarse relative age when a reference time is known.
func renderAge(createdAt, now time.Time) string {
	stamp := createdAt.Format(time.RFC3339)
	if now.IsZero() || now.Before(createdAt) {
		return stamp
	}

	age := now.Sub(createdAt)
	switch {
	case age < time.Minute:
		return stamp + " (just now)"
	case age < time.Hour:
		return fmt.Sprintf("%s (%dm ago)", stamp, int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%s (%dh ago)", stamp, int(age.Hours()))
	default:
		return fmt.Sprintf("%s (%dd ago)", stamp, int(age.Hours()/24))
	}
}

func renderStatus(s styles, status domain.BotStatus) string {
	switch status {
	case domain.BotStatusReady:
		return s.ready.Render(string(status))
	case domain.BotStatusPending:
		return s.pending.Render(string(status))
	case domain.BotStatusProcessing:
		return s.processing.Render(string(status))
	case domain.BotStatusError:
		return s.failed.Render(string(status))
	default:
		return string(status)
	}
}
