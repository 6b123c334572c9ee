package archive

import "github.com/vivekpraj/website-to-chatbot-cli/internal/domain"

type fileSchema struct {
	Transcripts []transcriptSchema `toml:"transcripts"`
}

type transcriptSchema struct {
	BotID    string          `toml:"bot_id"`
	Messages []messageSchema `toml:"messages"`
}

type messageSchema struct {
	Role    string `toml:"role"`
	Content string `toml:"content"`
}

func toSchema(transcript domain.Transcript) transcriptSchema {
	messages := make([]messageSchema, 0, len(transcript.Messages))
	for _, message := range transcript.Messages {
		messages = append(messages, messageSchema{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	return transcriptSchema{
		BotID:    string(transcript.BotID),
		Messages: messages,
	}
}

func fromSchema(entry transcriptSchema) domain.Transcript {
	messages := make([]domain.Message, 0, len(entry.Messages))
	for _, message := range entry.Messages {
		messages = append(messages, domain.Message{
			Role:    domain.MessageRole(message.Role),
			Content: message.Content,
		})
	}

	return domain.Transcript{
		BotID:    domain.BotID(entry.BotID),
		Messages: messages,
	}
}
