package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/mcp"
	_ "github.com/PAIR-Systems-Inc/cohere4go/internal/mcp/builtin" // registers the Cohere tools
	"github.com/PAIR-Systems-Inc/cohere4go/internal/table"
)

func mcpCommand(version string) *cli.Command {
	serve := func(ctx context.Context, cmd *cli.Command) error {
		client, _, err := newClient(ctx, cmd)
		if err != nil {
			return err
		}
		srv := mcp.NewServer(version, mcp.DefaultToolRegistry, client)
		err = mcp.ServeStdio(ctx, srv, cmd.Root().Reader, cmd.Root().Writer, slog.Default())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return &cli.Command{
		Name:   "mcp",
		Usage:  "Serve embed, rerank and chat as Model Context Protocol tools",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Speak MCP over stdin and stdout (default)",
				Action: serve,
			},
			{
				Name:  "tools",
				Usage: "List the tools the server exposes",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withInProcessServer(ctx, cmd, version, func(m *mcp.Manager) error {
						tools := m.ListTools()
						return render(cmd, tools, func(w io.Writer) error {
							t := table.New(table.Column{Header: "Tool"}, table.Column{Header: "Description", MaxWidth: 70})
							for _, tool := range tools {
								t.AddRow(tool.Name, tool.Description)
							}
							t.Print(table.PrintOptions{Writer: w, Indent: "  ", HighlightColumn: 0, HighlightColor: "36", NoColor: !colorEnabled(w)})
							return nil
						})
					})
				},
			},
			{
				Name:      "call",
				Usage:     "Call a tool once with JSON arguments",
				ArgsUsage: "<tool> [json-arguments]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return errors.New("tool name is required")
					}
					args := map[string]any{}
					if raw := cmd.Args().Get(1); raw != "" {
						if err := json.Unmarshal([]byte(raw), &args); err != nil {
							return fmt.Errorf("invalid tool arguments: %w", err)
						}
					}

					return withInProcessServer(ctx, cmd, version, func(m *mcp.Manager) error {
						res, err := m.CallTool(ctx, name, args)
						if err != nil {
							return err
						}
						fmt.Fprintln(cmd.Root().Writer, mcp.ResultText(res))
						if res.IsError {
							return fmt.Errorf("tool %s reported an error", name)
						}
						return nil
					})
				},
			},
		},
	}
}

// withInProcessServer connects a client to the builtin server inside this process.
func withInProcessServer(ctx context.Context, cmd *cli.Command, version string, fn func(*mcp.Manager) error) error {
	client, _, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}

	m := mcp.NewManager("cohere-cli", version)
	defer func() { _ = m.Close() }()

	if err := m.AddInProcessServer(ctx, mcp.ServerName, mcp.NewServer(version, mcp.DefaultToolRegistry, client)); err != nil {
		return err
	}
	return fn(m)
}
