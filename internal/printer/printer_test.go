package printer

import (
	"bytes"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

func TestPrintMessagePlain(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).PrintMessage(cohere.RoleAssistant, "hello", false)
	assert.Equal(t, "assistant: hello\n", buf.String())
}

func TestPrintMessageColors(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	p.PrintMessage(cohere.RoleAssistant, "hi", false)
	assert.Contains(t, buf.String(), ColorBlue)
	assert.NotContains(t, buf.String(), ColorDim)

	buf.Reset()
	p.PrintMessage(cohere.RoleUser, "hi", true)
	assert.Contains(t, buf.String(), ColorGreen)
	assert.Contains(t, buf.String(), ColorDim)
}

// TestPlainOutputHasNoEscapes verifies that a colorless printer never emits ANSI sequences.
func TestPlainOutputHasNoEscapes(t *testing.T) {
	property := func(role, message string, isHistory bool) bool {
		var buf bytes.Buffer
		New(&buf, false).PrintMessage(role, message, isHistory)
		return buf.String() == role+": "+message+"\n"
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestPrintUsage(t *testing.T) {
	in, out := 12.0, 3.0

	var buf bytes.Buffer
	p := New(&buf, false)
	p.PrintUsage(&cohere.Usage{
		Tokens:      &cohere.ApiMetaTokens{InputTokens: &in, OutputTokens: &out},
		BilledUnits: &cohere.ApiMetaBilledUnits{InputTokens: &in},
	})
	assert.Equal(t, "[tokens in=12 out=3, billed in=12 out=-]\n", buf.String())

	buf.Reset()
	p.PrintUsage(nil)
	p.PrintUsage(&cohere.Usage{})
	assert.True(t, strings.TrimSpace(buf.String()) == "")
}
