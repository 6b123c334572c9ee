package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

// ChatState is the per-transcript send state machine: Idle → Sending → Idle.
type ChatState int

const (
	ChatIdle ChatState = iota
	ChatSending
)

// ChatSession owns the ordered transcript for one bot. Send appends the
// user's utterance immediately (never rolled back), allows at most one
// exchange in flight, and appends the assistant reply on success. On failure
// the session-visible error carries the display message for the classified
// error kind; the next Send is a fresh attempt.
type ChatSession struct {
	client ports.APIClient
	botID  domain.BotID
	logger *slog.Logger

	mu         sync.Mutex
	state      ChatState
	transcript []domain.Message
	errMsg     string
	closed     bool
}

func NewChatSession(client ports.APIClient, botID domain.BotID, logger *slog.Logger) *ChatSession {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatSession{
		client: client,
		botID:  botID,
		logger: logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Send drives one exchange. Whitespace-only text is a no-op with no state
// change and no call. A Send while another is in flight is also a no-op and
// returns domain.ErrSendInFlight without touching the transcript.
func (s *ChatSession) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if s.state == ChatSending {
		s.mu.Unlock()
		return domain.ErrSendInFlight
	}
	s.state = ChatSending
	s.errMsg = ""
	s.transcript = append(s.transcript, domain.Message{Role: domain.MessageRoleUser, Content: text})
	s.mu.Unlock()

	var resp chatResponse
	err := s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/chat/%s", s.botID), chatRequest{Message: text}, &resp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		// The owning view is gone; drop the late response.
		return domain.ErrSessionClosed
	}

	s.state = ChatIdle

	if err != nil {
		if apiErr, ok := domain.AsAPIError(err); ok {
			s.errMsg = apiErr.DisplayMessage()
		} else {
			s.errMsg = "Something went wrong"
		}
		s.logger.Warn("chat send failed", "bot_id", s.botID, "err", err)
		return err
	}

	s.transcript = append(s.transcript, domain.Message{Role: domain.MessageRoleAssistant, Content: resp.Answer})
	return nil
}

// Transcript returns a copy of the message history, oldest first.
func (s *ChatSession) Transcript() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// State reports the current send state.
func (s *ChatSession) State() ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err is the display message from the most recent failed exchange, cleared
// when a new Send starts.
func (s *ChatSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Preload seeds the transcript from an archived conversation. Only valid
// before the first Send of this session.
func (s *ChatSession) Preload(messages []domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	if len(s.transcript) > 0 || s.state != ChatIdle {
		return fmt.Errorf("transcript already has messages")
	}

	s.transcript = append(s.transcript, messages...)
	return nil
}

// Close marks the owning view as torn down; a response that arrives after
// this is not applied to the transcript.
func (s *ChatSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
