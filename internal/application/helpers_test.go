package application

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/api"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/token"
)

type memStore struct {
	mu         sync.Mutex
	credential string
}

func (m *memStore) Save(credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	return nil
}

func (m *memStore) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, m.credential != ""
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	return nil
}

func newTestClient(t *testing.T, server *httptest.Server, creds *memStore) *api.Client {
	t.Helper()

	client, err := api.NewClient(server.URL, server.Client(), creds)
	require.NoError(t, err)
	return client
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// makeCredential builds an unsigned compact-serialized token carrying the
// given claims payload.
func makeCredential(t *testing.T, payload map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	encode := base64.RawURLEncoding.EncodeToString
	return encode(header) + "." + encode(body) + "." + encode([]byte("sig"))
}

func newTestSession(client *api.Client, creds *memStore) *Session {
	return NewSession(client, creds, token.Decoder{}, quietLogger())
}
