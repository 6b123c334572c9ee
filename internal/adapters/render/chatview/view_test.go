package chatview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

func TestRenderEmptyTranscriptShowsPrompt(t *testing.T) {
	t.Parallel()

	out := Render(nil, "")
	assert.Contains(t, out, "Ask anything about the website.")
}

func TestRenderKeepsChronologicalOrder(t *testing.T) {
	t.Parallel()

	messages := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "what do you sell?"},
		{Role: domain.MessageRoleAssistant, Content: "we sell widgets"},
	}

	out := Render(messages, "")
	assert.Contains(t, out, "what do you sell?")
	assert.Contains(t, out, "we sell widgets")
	assert.Less(t, strings.Index(out, "what do you sell?"), strings.Index(out, "we sell widgets"))
}

func TestRenderAppendsErrorLine(t *testing.T) {
	t.Parallel()

	messages := []domain.Message{{Role: domain.MessageRoleUser, Content: "hi"}}
	out := Render(messages, domain.RateLimitMessage)
	assert.Contains(t, out, domain.RateLimitMessage)
	assert.Less(t, strings.Index(out, "hi"), strings.Index(out, domain.RateLimitMessage))
}
