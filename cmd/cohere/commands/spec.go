package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/PAIR-Systems-Inc/cohere4go/openapi"
)

func specCommand() *cli.Command {
	return &cli.Command{
		Name:  "spec",
		Usage: "Inspect the embedded OpenAPI document",
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "Validate the document and confirm every wrapped operation is described",
				Action: specCheckAction,
			},
			{
				Name:  "dump",
				Usage: "Print the embedded OpenAPI YAML",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := cmd.Root().Writer.Write(openapi.Spec)
					return err
				},
			},
		},
	}
}

type specReport struct {
	Title      string   `json:"title"`
	Version    string   `json:"version"`
	Operations []string `json:"operations"`
	Schemas    []string `json:"schemas"`
}

func specCheckAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return err
	}
	if err := openapi.CheckOperations(doc, openapi.Operations); err != nil {
		return err
	}

	report := specReport{
		Title:      doc.Info.Title,
		Version:    doc.Info.Version,
		Operations: openapi.Describe(doc, openapi.Operations),
		Schemas:    openapi.SchemaNames(doc),
	}
	return render(cmd, report, func(w io.Writer) error {
		fmt.Fprintf(w, "%s %s: OK\n\n", report.Title, report.Version)
		for _, line := range report.Operations {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintf(w, "\n%d schemas\n", len(report.Schemas))
		return nil
	})
}
