package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/credentials"
)

// authCommand returns the 'auth' subcommand for managing the stored API key.
func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the Cohere API key",
		Commands: []*cli.Command{
			authLoginCommand(),
			authLogoutCommand(),
			authStatusCommand(),
		},
	}
}

// authLoginCommand returns the 'auth login' subcommand.
func authLoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Save an API key to the configured storage",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "stdin", Usage: "read the key from stdin instead of prompting"},
		},
		Action: authLoginAction,
	}
}

// authLogoutCommand returns the 'auth logout' subcommand.
func authLogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Remove the API key from the configured storage",
		Action: authLogoutAction,
	}
}

// authStatusCommand returns the 'auth status' subcommand.
func authStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show where the API key is read from",
		Action: authStatusAction,
	}
}

// writableStore loads the configured store, rejecting env storage.
func writableStore(cmd *cli.Command, action string) (credentials.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.Storage == credentials.StorageEnv {
		return nil, fmt.Errorf("cannot %s with env storage (read-only). Configure file or keyring storage", action)
	}
	return credentialStore(cfg)
}

func authLoginAction(ctx context.Context, cmd *cli.Command) error {
	store, err := writableStore(cmd, "login")
	if err != nil {
		return err
	}

	var key string
	if cmd.Bool("stdin") {
		lines, err := readLines(cmd.Root().Reader)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			key = lines[0]
		}
	} else {
		key, err = readSecureInput(ctx, "Cohere API key: ")
		if err != nil {
			return err
		}
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key cannot be empty")
	}

	if err := store.Write(ctx, key); err != nil {
		return fmt.Errorf("failed to write API key: %w", err)
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Login Successful ===")
	fmt.Fprintf(w, "API key %s saved to %s\n", credentials.Mask(key), store)
	return nil
}

func authLogoutAction(ctx context.Context, cmd *cli.Command) error {
	store, err := writableStore(cmd, "logout")
	if err != nil {
		return err
	}

	// Clear via empty write to keep the storage abstraction
	if err := store.Write(ctx, ""); err != nil {
		return fmt.Errorf("failed to clear API key: %w", err)
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Logout Successful ===")
	fmt.Fprintf(w, "API key cleared from %s\n", store)
	return nil
}

type authStatus struct {
	Source string `json:"source"`
	Key    string `json:"key,omitempty"`
}

func authStatusAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	status := authStatus{Source: "none"}
	if cfg.Cohere.APIKey != "" {
		status = authStatus{Source: "config or " + credentials.EnvVar, Key: credentials.Mask(cfg.Cohere.APIKey)}
	} else {
		store, err := credentialStore(cfg)
		if err != nil {
			return err
		}
		key, err := store.Read(ctx)
		switch {
		case errors.Is(err, credentials.ErrNotFound):
		case err != nil:
			return fmt.Errorf("failed to read %s: %w", store, err)
		default:
			status = authStatus{Source: store.String(), Key: credentials.Mask(key)}
		}
	}

	return render(cmd, status, func(w io.Writer) error {
		if status.Key == "" {
			fmt.Fprintf(w, "Not logged in. Set %s or run 'cohere auth login'.\n", credentials.EnvVar)
			return nil
		}
		fmt.Fprintf(w, "API key %s from %s\n", status.Key, status.Source)
		return nil
	})
}

// readSecureInput reads user input with hidden display and context cancellation support.
// term.ReadPassword has no native context support, hence the goroutine.
func readSecureInput(ctx context.Context, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --stdin to pipe the key")
	}

	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	type result struct {
		value string
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		inputBytes, err := term.ReadPassword(fd)
		resultCh <- result{value: string(inputBytes), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return res.value, nil
	}
}

func isTerminal(fd int) bool {
	return term.IsTerminal(fd) && os.Getenv("NO_COLOR") == ""
}
