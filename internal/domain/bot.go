package domain

import "time"

type BotID string

type BotStatus string

const (
	BotStatusPending    BotStatus = "pending"
	BotStatusProcessing BotStatus = "processing"
	BotStatusReady      BotStatus = "ready"
	BotStatusError      BotStatus = "error"
)

// Bot is a crawled-website chatbot as reported by the backend. Status
// transitions happen server-side only; the client never mutates Status and
// picks up changes on the next list fetch.
type Bot struct {
	ID           BotID     `json:"bot_id"`
	WebsiteURL   string    `json:"website_url"`
	Status       BotStatus `json:"status"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	MessageCount int       `json:"message_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
