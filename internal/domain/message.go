package domain

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is a single chat utterance. Messages are immutable once appended
// to a transcript.
type Message struct {
	Role    MessageRole `json:"role" toml:"role"`
	Content string      `json:"content" toml:"content"`
}

// Transcript is the ordered, append-only message history for one bot.
// Insertion order is chronological and is the only ordering guarantee.
type Transcript struct {
	BotID    BotID     `toml:"bot_id"`
	Messages []Message `toml:"messages"`
}
