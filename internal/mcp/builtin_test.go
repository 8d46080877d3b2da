package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
)

func echoFactory(*cohere.CohereClient) ToolHandler {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return mcplib.NewToolResultText("pong"), nil
	}
}

func TestToolRegistry(t *testing.T) {
	r := NewToolRegistry()
	r.Register(mcplib.NewTool("zeta"), echoFactory)
	r.Register(mcplib.NewTool("alpha"), echoFactory)
	r.Register(mcplib.NewTool("alpha", mcplib.WithDescription("replaced")), echoFactory)

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())

	reg, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "replaced", reg.Tool.Description)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestServeStdioInitialize(t *testing.T) {
	r := NewToolRegistry()
	r.Register(mcplib.NewTool("ping"), echoFactory)
	srv := NewServer("1.2.3", r, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- ServeStdio(ctx, srv, inR, outW, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	request := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"` +
		mcplib.LATEST_PROTOCOL_VERSION + `","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}` + "\n"
	_, err := io.WriteString(inW, request)
	require.NoError(t, err)

	line, err := bufio.NewReader(outR).ReadBytes('\n')
	require.NoError(t, err)

	var resp struct {
		ID     int `json:"id"`
		Result struct {
			ServerInfo struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(line, &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, ServerName, resp.Result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", resp.Result.ServerInfo.Version)

	cancel()
	_ = inW.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ServeStdio did not return after cancellation")
	}
}

func TestResultText(t *testing.T) {
	assert.Empty(t, ResultText(nil))
	res := &mcplib.CallToolResult{Content: []mcplib.Content{
		mcplib.NewTextContent("a"),
		mcplib.NewImageContent("xx", "image/png"),
		mcplib.NewTextContent("b"),
	}}
	assert.Equal(t, "a\nb", ResultText(res))
}
