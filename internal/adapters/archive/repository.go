// Package archive persists finished chat transcripts to a local TOML file so
// a conversation can be reviewed or resumed later. Purely a local
// convenience; nothing here changes network behavior.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

const (
	transcriptsPathKey  = "transcripts.path"
	transcriptsFileMode = 0o600
	transcriptsDirMode  = 0o700
	transcriptsFile     = "transcripts.toml"
	tempFilePattern     = ".transcripts-*.toml.tmp"
)

type Repository struct {
	transcriptsPath string
	mu              sync.RWMutex
}

var _ ports.TranscriptArchive = (*Repository)(nil)

// NewRepository resolves the transcripts path from cfg, defaulting to
// <configDir>/transcripts.toml.
func NewRepository(cfg *viper.Viper, configDir string) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(transcriptsPathKey, filepath.Join(configDir, transcriptsFile))

	transcriptsPath := cfg.GetString(transcriptsPathKey)
	if transcriptsPath == "" {
		return nil, errors.New("transcripts path is empty")
	}

	absPath, err := filepath.Abs(transcriptsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve transcripts path: %w", err)
	}

	return &Repository{transcriptsPath: filepath.Clean(absPath)}, nil
}

func (r *Repository) Save(ctx context.Context, transcript domain.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if transcript.BotID == "" {
		return errors.New("transcript bot id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(transcript)
	updated := false
	for i := range file.Transcripts {
		if file.Transcripts[i].BotID == encoded.BotID {
			file.Transcripts[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Transcripts = append(file.Transcripts, encoded)
	}

	return r.writeSchema(file)
}

func (r *Repository) Load(ctx context.Context, id domain.BotID) (domain.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return domain.Transcript{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Transcript{}, err
	}

	for _, entry := range file.Transcripts {
		if entry.BotID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Transcript{}, domain.ErrTranscriptNotFound
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.transcriptsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read transcripts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode transcripts file: %w", err)
	}

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.transcriptsPath), transcriptsDirMode); err != nil {
		return fmt.Errorf("create transcripts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode transcripts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.transcriptsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp transcripts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp transcripts file: %w", err)
	}

	if err := tempFile.Chmod(transcriptsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp transcripts file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp transcripts file: %w", err)
	}

	if err := os.Rename(tempName, r.transcriptsPath); err != nil {
		return fmt.Errorf("replace transcripts file: %w", err)
	}

	cleanup = false

	return nil
}
