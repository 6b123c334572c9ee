package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/api"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/archive"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/credfile"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/adapters/token"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/application"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

const (
	configName        = "config"
	configType        = "toml"
	configDirName     = ".w2c"
	apiBaseURLKey     = "api.base_url"
	defaultAPIBaseURL = "http://localhost:8000"
)

type app struct {
	session *application.Session
	guard   *application.Guard
	client  *api.Client
	creds   ports.CredentialStore
	archive ports.TranscriptArchive
	logger  *slog.Logger
	clock   ports.Clock
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := envOrDefault("W2C_API_URL", cfg.GetString(apiBaseURLKey))

	creds, err := credfile.NewStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	client, err := api.NewClient(baseURL, http.DefaultClient, creds)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	transcripts, err := archive.NewRepository(cfg, configDir)
	if err != nil {
		return nil, fmt.Errorf("wire transcript archive: %w", err)
	}

	logger := newLogger()
	session := application.NewSession(client, creds, token.Decoder{}, logger)

	return &app{
		session: session,
		guard:   application.NewGuard(session),
		client:  client,
		creds:   creds,
		archive: transcripts,
		logger:  logger,
		clock:   ports.SystemClock{},
	}, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("W2C_DEBUG") != "" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
