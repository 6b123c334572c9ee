// Package application holds the client-side state behind the screens: the
// process-wide session, the role gate, the bot lifecycle and the chat
// exchange. All network activity goes through the ports.APIClient
// chokepoint; nothing here is fatal to the process.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

// Session is the process-wide credential state: explicit init (the store
// reads the persisted credential), explicit teardown (Logout clears it).
// Claims derived from the credential are advisory display data only; the
// backend enforces real authorization on every privileged call.
type Session struct {
	client  ports.APIClient
	creds   ports.CredentialStore
	decoder ports.ClaimsDecoder
	logger  *slog.Logger
}

func NewSession(client ports.APIClient, creds ports.CredentialStore, decoder ports.ClaimsDecoder, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		client:  client,
		creds:   creds,
		decoder: decoder,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token and persists it under the
// store's fixed key.
func (s *Session) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	if err := s.client.Do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}

	if strings.TrimSpace(resp.AccessToken) == "" {
		return fmt.Errorf("login response missing access token")
	}

	if err := s.creds.Save(resp.AccessToken); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.logger.Info("logged in", "email", email)
	return nil
}

// Register creates an account. Nothing is stored locally; the caller logs in
// afterwards.
func (s *Session) Register(ctx context.Context, email, password string) error {
	var confirmation map[string]any
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register", loginRequest{Email: email, Password: password}, &confirmation); err != nil {
		return err
	}

	s.logger.Info("registered", "email", email)
	return nil
}

// Logout clears the stored credential. Idempotent.
func (s *Session) Logout() error {
	if err := s.creds.Clear(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}

// Credential returns the raw stored credential, expired or not.
func (s *Session) Credential() (string, bool) {
	return s.creds.Get()
}

// Claims decodes the current credential. Nil when no credential is stored or
// the credential is malformed; absence of a credential implies absence of
// claims implies unauthenticated.
func (s *Session) Claims() *domain.Claims {
	credential, ok := s.creds.Get()
	if !ok {
		return nil
	}

	return s.decoder.Decode(credential)
}

// Role reports the advisory role from the current claims.
func (s *Session) Role() (domain.Role, bool) {
	claims := s.Claims()
	if claims == nil || claims.Role == "" {
		return "", false
	}

	return claims.Role, true
}

// Authenticated reports whether a credential is present at all.
func (s *Session) Authenticated() bool {
	_, ok := s.creds.Get()
	return ok
}
