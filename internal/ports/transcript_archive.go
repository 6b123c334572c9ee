package ports

import (
	"context"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
)

// TranscriptArchive stores finished chat transcripts locally, one per bot.
type TranscriptArchive interface {
	Load(ctx context.Context, id domain.BotID) (domain.Transcript, error)
	Save(ctx context.Context, transcript domain.Transcript) error
}
