// Package printer provides terminal output formatting with ANSI colors for chat messages.
package printer

import (
	"fmt"
	"io"
	"strconv"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

// ANSI escape codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorDim    = "\033[2m" // Dim/faint intensity
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
)

// Printer writes chat transcript lines to w.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w. Colors are emitted only when color is true.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) paint(code string) string {
	if !p.color {
		return ""
	}
	return code
}

// RolePrefix returns the colored "role: " prefix used before message content.
func (p *Printer) RolePrefix(role string, isHistory bool) string {
	color := ColorGreen
	switch role {
	case cohere.RoleAssistant:
		color = ColorBlue
	case cohere.RoleTool, cohere.RoleSystem:
		color = ColorYellow
	}

	dim := ""
	if isHistory {
		dim = ColorDim
	}

	return fmt.Sprintf("%s%s%s%s: ", p.paint(dim), p.paint(color), role, p.paint(ColorReset))
}

// PrintMessage outputs a chat message with appropriate formatting based on role and history status.
// isHistory uses dim intensity for loaded messages.
func (p *Printer) PrintMessage(role string, message string, isHistory bool) {
	dim := ""
	if isHistory {
		dim = ColorDim
	}
	fmt.Fprintf(p.w, "%s%s%s%s\n", p.RolePrefix(role, isHistory), p.paint(dim), message, p.paint(ColorReset))
}

// PrintUsage outputs billed units and token counts on a single dim line.
// Nothing is printed when usage is nil.
func (p *Printer) PrintUsage(usage *cohere.Usage) {
	if usage == nil {
		return
	}

	line := ""
	if usage.Tokens != nil {
		line += "tokens in=" + number(usage.Tokens.InputTokens) + " out=" + number(usage.Tokens.OutputTokens)
	}
	if usage.BilledUnits != nil {
		if line != "" {
			line += ", "
		}
		line += "billed in=" + number(usage.BilledUnits.InputTokens) + " out=" + number(usage.BilledUnits.OutputTokens)
	}
	if line == "" {
		return
	}

	fmt.Fprintf(p.w, "%s[%s]%s\n", p.paint(ColorDim), line, p.paint(ColorReset))
}

func number(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
