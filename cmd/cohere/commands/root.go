// Package commands implements the cohere command line interface.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v3"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/observability"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string, version, commit string) error {
	return newRootCommand(version, commit, os.Stdin, os.Stdout).Run(ctx, args)
}

func newRootCommand(version, commit string, stdin io.Reader, stdout io.Writer) *cli.Command {
	if version == "dev" {
		version = versioninfo.Short()
	}

	return &cli.Command{
		Name:      "cohere",
		Usage:     "Cohere embeddings, rerank and chat from the command line",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file (default: ./cohere.yaml when present)",
				Sources: cli.EnvVars("COHERE_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug|info|warn|error)",
				Value: slog.LevelWarn.String(),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text|json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format (text|json|yaml)",
				Value:   outputText,
				Validator: func(s string) error {
					switch s {
					case outputText, outputJSON, outputYAML:
						return nil
					}
					return fmt.Errorf("unsupported output format %q (expected: text, json, yaml)", s)
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := observability.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			// Logs go to stderr; stdout carries command output and MCP frames.
			if err := observability.Instrument(os.Stderr, level, cmd.String("log-format")); err != nil {
				return ctx, fmt.Errorf("failed to set up observability layer: %w", err)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			embedCommand(),
			rerankCommand(),
			chatCommand(version),
			modelsCommand(),
			specCommand(),
			mcpCommand(version),
			authCommand(),
			versionCommand(version, commit),
		},
	}
}

func versionCommand(version, commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "cohere %s (commit %s, built %s)\n",
				version, commit, versioninfo.LastCommit.Format("2006-01-02"))
			return nil
		},
	}
}
