package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/table"
)

func rerankCommand() *cli.Command {
	return &cli.Command{
		Name:      "rerank",
		Usage:     "Order documents by relevance to a query",
		ArgsUsage: "[document...]",
		Description: "Documents are taken from the arguments, or one per line on stdin.\n" +
			"Example: cohere rerank -q 'capital of the United States' 'Carson City is ...' 'Washington, D.C. is ...'",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "search query", Required: true},
			&cli.StringFlag{Name: "model", Usage: "rerank model (default from config)"},
			&cli.IntFlag{Name: "top-n", Usage: "number of results to return (0 returns all)"},
			&cli.IntFlag{Name: "max-tokens-per-doc", Usage: "truncate each document to this many tokens"},
		},
		Action: rerankAction,
	}
}

// rankedRow is the JSON and YAML shape of one rerank result.
type rankedRow struct {
	Rank           int     `json:"rank"`
	Index          int     `json:"index"`
	RelevanceScore float32 `json:"relevance_score"`
	Document       string  `json:"document"`
}

func rerankAction(ctx context.Context, cmd *cli.Command) error {
	docs := cmd.Args().Slice()
	if len(docs) == 0 {
		var err error
		if docs, err = readLines(cmd.Root().Reader); err != nil {
			return err
		}
	}
	if len(docs) == 0 {
		return errors.New("no documents to rerank")
	}

	req := cohere.Rerankv2Request{
		Model:     cmd.String("model"),
		Query:     cmd.String("query"),
		Documents: docs,
	}
	if n := cmd.Int("top-n"); n > 0 {
		req.TopN = &n
	}
	if n := cmd.Int("max-tokens-per-doc"); n > 0 {
		req.MaxTokensPerDoc = &n
	}

	client, _, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}

	resp, err := client.Rerank(ctx, req)
	if err != nil {
		return fmt.Errorf("rerank failed: %w", err)
	}

	rows := make([]rankedRow, 0, len(resp.Results))
	for i, r := range resp.Results {
		doc := ""
		if r.Index >= 0 && r.Index < len(docs) {
			doc = docs[r.Index]
		}
		rows = append(rows, rankedRow{Rank: i + 1, Index: r.Index, RelevanceScore: r.RelevanceScore, Document: doc})
	}

	return render(cmd, rows, func(w io.Writer) error {
		if resp.Id != nil {
			fmt.Fprintf(w, "ID: %s\n", *resp.Id)
		}
		t := table.New(
			table.Column{Header: "Rank", Align: table.AlignRight},
			table.Column{Header: "Index", Align: table.AlignRight},
			table.Column{Header: "Score", MinWidth: 8, Align: table.AlignRight},
			table.Column{Header: "Document", MaxWidth: 80},
		)
		for _, row := range rows {
			t.AddRow(strconv.Itoa(row.Rank), strconv.Itoa(row.Index),
				strconv.FormatFloat(float64(row.RelevanceScore), 'f', 6, 32), row.Document)
		}
		t.Print(table.PrintOptions{Writer: w, Indent: "  ", HighlightColumn: 2, HighlightColor: "33", NoColor: !colorEnabled(w)})
		printMeta(w, resp.Meta)
		return nil
	})
}
