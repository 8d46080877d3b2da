package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/config"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/credentials"
)

// loadConfig loads the file named by --config, or the default file when present.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path, os.Environ)
}

// credentialStore returns the store configured under auth.
func credentialStore(cfg *config.Config) (credentials.Store, error) {
	store, err := credentials.New(cfg.Auth.Storage, cfg.Auth.File)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential store: %w", err)
	}
	return store, nil
}

// newClient builds a CohereClient from configuration. The API key comes from
// the config or environment first, then from the configured credential store.
func newClient(ctx context.Context, cmd *cli.Command) (*cohere.CohereClient, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := credentialStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	apiKey, err := credentials.Resolve(ctx, cfg.Cohere.APIKey, store)
	if errors.Is(err, credentials.ErrNotFound) {
		return nil, nil, fmt.Errorf("no API key: set %s or run 'cohere auth login'", credentials.EnvVar)
	}
	if err != nil {
		return nil, nil, err
	}

	userAgent := "cohere-cli/" + cmd.Root().Version
	client, err := cohere.NewCohereClient(cfg.ClientConfig(apiKey, userAgent), cohere.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
