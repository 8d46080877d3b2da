package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/PAIR-Systems-Inc/cohere4go/internal/spinner"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes v in the format chosen by --output. Text output is
// delegated to text.
func render(cmd *cli.Command, v any, text func(w io.Writer) error) error {
	w := cmd.Root().Writer
	switch cmd.String("output") {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		return writeYAML(w, v)
	default:
		return text(w)
	}
}

// writeYAML encodes v through its JSON form so field names and union
// payloads match the API documents.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// colorEnabled reports whether w is a terminal that should receive ANSI colors.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isTerminal(int(f.Fd()))
}

// stderrSpinner returns a spinner on stderr, or nil when stderr is not a terminal.
func stderrSpinner() *spinner.Spinner {
	if !colorEnabled(os.Stderr) {
		return nil
	}
	return spinner.New(os.Stderr)
}
