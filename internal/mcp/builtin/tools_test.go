package builtin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/mcp"
)

// fakeCohere answers the embed, rerank and chat endpoints with canned bodies.
func fakeCohere(t *testing.T) *cohere.CohereClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/embed":
			assert.Equal(t, "search_query", req["input_type"])
			_, _ = io.WriteString(w, `{"id":"emb-1","embeddings":{"float":[[0.1,0.2],[0.3,0.4]]}}`)
		case "/v2/rerank":
			assert.EqualValues(t, 1, req["top_n"])
			_, _ = io.WriteString(w, `{"id":"rr-1","results":[{"index":1,"relevance_score":0.93}]}`)
		case "/v2/chat":
			msgs := req["messages"].([]any)
			if len(msgs) == 2 {
				assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
			}
			if msgs[len(msgs)-1].(map[string]any)["content"] == "fail" {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w, `{"message":"slow down"}`)
				return
			}
			_, _ = io.WriteString(w, `{"id":"c-1","finish_reason":"COMPLETE","message":{"role":"assistant","content":[{"type":"text","text":"Carson City"}]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"not found"}`)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := cohere.NewCohereClient(cohere.Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		MaxRetries: -1,
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func connect(t *testing.T) *mcp.Manager {
	t.Helper()
	registry := mcp.NewToolRegistry()
	Register(registry)

	m := mcp.NewManager("cohere4go-test", "0.0.0")
	t.Cleanup(func() { _ = m.Close() })

	srv := mcp.NewServer("test", registry, fakeCohere(t))
	require.NoError(t, m.AddInProcessServer(context.Background(), "cohere", srv))
	return m
}

func TestToolsAreListed(t *testing.T) {
	m := connect(t)

	var names []string
	for _, tool := range m.ListTools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{ChatTool, EmbedTool, RerankTool}, names)
	assert.Equal(t, 1, m.ServerCount())

	tool, ok := m.GetTool(RerankTool)
	require.True(t, ok)
	assert.Contains(t, tool.InputSchema.Required, "documents")
}

func TestEmbedTool(t *testing.T) {
	m := connect(t)

	res, err := m.CallTool(context.Background(), EmbedTool, map[string]any{
		"texts":      []any{"a", "b"},
		"input_type": "search_query",
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out embedResult
	require.NoError(t, json.Unmarshal([]byte(mcp.ResultText(res)), &out))
	assert.Equal(t, "emb-1", out.ID)
	require.NotNil(t, out.Embeddings.Float)
	assert.Len(t, *out.Embeddings.Float, 2)
}

func TestRerankTool(t *testing.T) {
	m := connect(t)

	res, err := m.CallTool(context.Background(), RerankTool, map[string]any{
		"query":     "capital of Nevada",
		"documents": []any{"Paris", "Carson City"},
		"top_n":     1,
	})
	require.NoError(t, err)

	var out []rankedDocument
	require.NoError(t, json.Unmarshal([]byte(mcp.ResultText(res)), &out))
	require.Len(t, out, 1)
	assert.Equal(t, rankedDocument{Index: 1, Score: 0.93, Document: "Carson City"}, out[0])
}

func TestChatTool(t *testing.T) {
	m := connect(t)

	res, err := m.CallTool(context.Background(), ChatTool, map[string]any{
		"message":  "What is the capital of Nevada?",
		"preamble": "Answer tersely.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carson City", mcp.ResultText(res))

	res, err = m.CallTool(context.Background(), ChatTool, map[string]any{"message": "fail"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, mcp.ResultText(res), "429")
}

func TestToolArgumentErrors(t *testing.T) {
	registry := mcp.NewToolRegistry()
	Register(registry)
	reg, ok := registry.Get(RerankTool)
	require.True(t, ok)
	handler := reg.HandlerFactory(nil)

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing query", map[string]any{"documents": []any{"a"}}},
		{"empty documents", map[string]any{"query": "q", "documents": []any{}}},
		{"non-string document", map[string]any{"query": "q", "documents": []any{1}}},
		{"fractional top_n", map[string]any{"query": "q", "documents": []any{"a"}, "top_n": 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler(context.Background(), makeCallToolRequest(tt.args))
			assert.Error(t, err)
		})
	}
}

func TestUnknownTool(t *testing.T) {
	m := connect(t)
	_, err := m.CallTool(context.Background(), "nope", nil)
	assert.ErrorContains(t, err, "tool not found")
	require.NoError(t, m.RemoveServer("cohere"))
	assert.Empty(t, m.ListTools())
	assert.Error(t, m.RemoveServer("cohere"))
}

func TestDefaultRegistryHasTools(t *testing.T) {
	assert.Equal(t, []string{ChatTool, EmbedTool, RerankTool}, mcp.DefaultToolRegistry.Names())
	assert.Equal(t, 3, mcp.DefaultToolRegistry.Count())
}
