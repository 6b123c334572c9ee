package credfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

const (
	storeDirMode   = 0o700
	credentialMode = 0o600

	// credentialFile is the one fixed storage key: the login response token
	// lives here and nowhere else.
	credentialFile = "credential"
)

// Store keeps the bearer credential in a single file under root. It is the
// process-restart analog of the browser frontend's localStorage entry.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(root string) (*Store, error) {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" {
		return nil, errors.New("credential store root is empty")
	}
	return &Store{root: filepath.Clean(trimmed)}, nil
}

func (s *Store) Save(credential string) error {
	if strings.TrimSpace(credential) == "" {
		return errors.New("credential is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	if err := os.WriteFile(s.path(), []byte(credential), credentialMode); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}

	return nil
}

// Get returns the stored credential and whether one exists. An expired
// credential is still returned; expiry is advisory display data only.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}

	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", false
	}

	return credential, true
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.root, credentialFile)
}
