package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/table"
)

func modelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List available models",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "endpoint", Usage: "only models compatible with this endpoint (chat|embed|rerank|...)"},
			&cli.BoolFlag{Name: "default-only", Usage: "only the default model of --endpoint"},
			&cli.IntFlag{Name: "page-size", Usage: "models per page", Value: 100},
			&cli.BoolFlag{Name: "all", Usage: "follow page tokens until every model is listed"},
		},
		Action: modelsAction,
	}
}

func modelsAction(ctx context.Context, cmd *cli.Command) error {
	params := cohere.ListModelsParams{}
	if n := cmd.Int("page-size"); n > 0 {
		params.PageSize = &n
	}
	if s := cmd.String("endpoint"); s != "" {
		endpoint, err := cohere.ParseCompatibleEndpoint(s)
		if err != nil {
			return err
		}
		params.Endpoint = &endpoint
	}
	if cmd.Bool("default-only") {
		v := true
		params.DefaultOnly = &v
	}

	client, _, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}

	var models []cohere.GetModelResponse
	for {
		resp, err := client.ListModels(ctx, &params)
		if err != nil {
			return fmt.Errorf("list models failed: %w", err)
		}
		models = append(models, resp.Models...)
		if !cmd.Bool("all") || resp.NextPageToken == nil || *resp.NextPageToken == "" {
			break
		}
		token := *resp.NextPageToken
		params.PageToken = &token
	}

	return render(cmd, models, func(w io.Writer) error {
		t := table.New(
			table.Column{Header: "Name"},
			table.Column{Header: "Endpoints", MaxWidth: 40},
			table.Column{Header: "Context", Align: table.AlignRight},
			table.Column{Header: "Status"},
		)
		for _, m := range models {
			contextLength := "-"
			if m.ContextLength != nil {
				contextLength = strconv.FormatFloat(*m.ContextLength, 'f', -1, 64)
			}
			status := ""
			if m.IsDeprecated != nil && *m.IsDeprecated {
				status = "deprecated"
			}
			t.AddRow(deref(m.Name), joinEndpoints(m.Endpoints), contextLength, status)
		}
		t.Print(table.PrintOptions{Writer: w, Indent: "  ", HighlightColumn: 0, HighlightColor: "36", NoColor: !colorEnabled(w)})
		fmt.Fprintf(w, "%d models\n", len(models))
		return nil
	})
}

func joinEndpoints(endpoints *[]cohere.CompatibleEndpoint) string {
	if endpoints == nil {
		return ""
	}
	parts := make([]string, len(*endpoints))
	for i, e := range *endpoints {
		parts[i] = string(e)
	}
	return strings.Join(parts, ",")
}
