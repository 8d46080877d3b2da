package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/table"
)

func embedCommand() *cli.Command {
	return &cli.Command{
		Name:      "embed",
		Usage:     "Embed texts given as arguments, or one per line on stdin",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Usage: "embedding model (default from config)"},
			&cli.StringFlag{
				Name:  "input-type",
				Usage: "search_document|search_query|classification|clustering",
				Value: string(cohere.EmbedInputTypeSearchDocument),
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "embedding type, repeatable (float|int8|uint8|binary|ubinary|base64)",
				Value: []string{string(cohere.EmbeddingTypeFloat)},
			},
			&cli.StringFlag{Name: "truncate", Usage: "NONE|START|END"},
			&cli.IntFlag{Name: "output-dimension", Usage: "embedding size for models that support it"},
		},
		Action: embedAction,
	}
}

func embedAction(ctx context.Context, cmd *cli.Command) error {
	texts := cmd.Args().Slice()
	if len(texts) == 0 {
		var err error
		if texts, err = readLines(cmd.Root().Reader); err != nil {
			return err
		}
	}
	if len(texts) == 0 {
		return errors.New("no texts to embed")
	}

	req, err := embedRequest(cmd, texts)
	if err != nil {
		return err
	}

	client, _, err := newClient(ctx, cmd)
	if err != nil {
		return err
	}

	resp, err := client.EmbedBatched(ctx, req)
	if err != nil {
		return fmt.Errorf("embed failed: %w", err)
	}

	return render(cmd, resp, func(w io.Writer) error {
		printEmbeddings(w, texts, resp)
		return nil
	})
}

func embedRequest(cmd *cli.Command, texts []string) (cohere.Embedv2Request, error) {
	inputType, err := cohere.ParseEmbedInputType(cmd.String("input-type"))
	if err != nil {
		return cohere.Embedv2Request{}, err
	}

	var types []cohere.EmbeddingType
	for _, s := range cmd.StringSlice("type") {
		et, err := cohere.ParseEmbeddingType(s)
		if err != nil {
			return cohere.Embedv2Request{}, err
		}
		types = append(types, et)
	}

	req := cohere.Embedv2Request{
		Model:          cmd.String("model"),
		InputType:      inputType,
		Texts:          &texts,
		EmbeddingTypes: &types,
	}
	if s := cmd.String("truncate"); s != "" {
		truncate, err := cohere.ParseTruncate(s)
		if err != nil {
			return cohere.Embedv2Request{}, err
		}
		req.Truncate = &truncate
	}
	if d := cmd.Int("output-dimension"); d > 0 {
		req.OutputDimension = &d
	}
	return req, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func printEmbeddings(w io.Writer, texts []string, resp *cohere.EmbedByTypeResponse) {
	fmt.Fprintf(w, "ID: %s\n", resp.Id)

	for _, v := range embeddingVectors(resp.Embeddings) {
		t := table.New(
			table.Column{Header: "#", Align: table.AlignRight},
			table.Column{Header: "Text", MaxWidth: 40},
			table.Column{Header: "Dims", Align: table.AlignRight},
			table.Column{Header: v.kind + " (first values)", MaxWidth: 48},
		)
		for i, row := range v.rows {
			text := ""
			if i < len(texts) {
				text = texts[i]
			}
			t.AddRow(strconv.Itoa(i), text, strconv.Itoa(row.dims), row.preview)
		}
		t.Print(table.PrintOptions{Writer: w, Indent: "  ", HighlightColumn: -1, NoColor: !colorEnabled(w)})
	}

	printMeta(w, resp.Meta)
}

type vectorRow struct {
	dims    int
	preview string
}

type vectorSet struct {
	kind string
	rows []vectorRow
}

// embeddingVectors summarizes every embedding type present in e.
func embeddingVectors(e cohere.EmbedByTypeResponseEmbeddings) []vectorSet {
	var sets []vectorSet
	if e.Float != nil {
		sets = append(sets, vectorSet{"float", summarizeVectors(*e.Float, func(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) })})
	}
	ints := []struct {
		kind string
		v    *[][]int
	}{{"int8", e.Int8}, {"uint8", e.Uint8}, {"binary", e.Binary}, {"ubinary", e.Ubinary}}
	for _, iv := range ints {
		if iv.v != nil {
			sets = append(sets, vectorSet{iv.kind, summarizeVectors(*iv.v, strconv.Itoa)})
		}
	}
	if e.Base64 != nil {
		rows := make([]vectorRow, len(*e.Base64))
		for i, s := range *e.Base64 {
			rows[i] = vectorRow{dims: len(s), preview: s}
		}
		sets = append(sets, vectorSet{"base64", rows})
	}
	return sets
}

func summarizeVectors[T any](vectors [][]T, format func(T) string) []vectorRow {
	const previewLen = 4
	rows := make([]vectorRow, len(vectors))
	for i, vec := range vectors {
		parts := make([]string, 0, previewLen)
		for _, x := range vec[:min(previewLen, len(vec))] {
			parts = append(parts, format(x))
		}
		rows[i] = vectorRow{dims: len(vec), preview: "[" + strings.Join(parts, ", ") + "]"}
	}
	return rows
}

func printMeta(w io.Writer, meta *cohere.ApiMeta) {
	if meta == nil {
		return
	}
	if meta.BilledUnits != nil {
		fmt.Fprintf(w, "Billed units: input_tokens=%s output_tokens=%s search_units=%s\n",
			number(meta.BilledUnits.InputTokens), number(meta.BilledUnits.OutputTokens), number(meta.BilledUnits.SearchUnits))
	}
	if meta.Warnings != nil {
		for _, warning := range *meta.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
	}
}

func number(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
