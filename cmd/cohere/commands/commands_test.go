package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fakeAPI serves canned Cohere responses and records request bodies by path.
type fakeAPI struct {
	t      *testing.T
	bodies map[string]map[string]any
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	var data []byte
	if r.Method == http.MethodPost {
		var err error
		data, err = io.ReadAll(r.Body)
		require.NoError(f.t, err)
		require.NoError(f.t, json.Unmarshal(data, &body))
	}
	f.bodies[r.URL.Path] = body

	if body["stream"] == true {
		w.Header().Set("Content-Type", "text/event-stream")
		events := []string{
			`{"type":"message-start","id":"s-1"}`,
			`{"type":"content-delta","index":0,"delta":{"message":{"content":{"text":"Hi "}}}}`,
			`{"type":"content-delta","index":0,"delta":{"message":{"content":{"text":"there"}}}}`,
			`{"type":"message-end","delta":{"finish_reason":"COMPLETE","usage":{"tokens":{"input_tokens":3,"output_tokens":2}}}}`,
		}
		// The last message asks for silence: stream no content at all.
		if bytes.Contains(data, []byte("say nothing")) {
			events = []string{events[0], events[3]}
		}
		for _, event := range events {
			_, _ = io.WriteString(w, "data: "+event+"\n\n")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/v2/embed":
		_, _ = io.WriteString(w, `{"id":"emb-1","embeddings":{"float":[[0.5,0.25,0.125]]},"meta":{"billed_units":{"input_tokens":2}}}`)
	case "/v2/rerank":
		_, _ = io.WriteString(w, `{"id":"rr-1","results":[{"index":1,"relevance_score":0.9},{"index":0,"relevance_score":0.1}]}`)
	case "/v2/chat":
		_, _ = io.WriteString(w, `{"id":"c-1","finish_reason":"COMPLETE","message":{"role":"assistant","content":[{"type":"text","text":"Hi there"}]}}`)
	case "/v1/chat":
		_, _ = io.WriteString(w, `{"text":"legacy reply","response_id":"r-1"}`)
	case "/v1/models":
		_, _ = io.WriteString(w, `{"models":[{"name":"command-r","endpoints":["chat"],"context_length":128000}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"not found"}`)
	}
}

func setup(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{t: t, bodies: map[string]map[string]any{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	t.Chdir(t.TempDir())
	t.Setenv("COHERE_API_KEY", "test-key")
	t.Setenv("COHERE_BASE_URL", srv.URL)
	t.Setenv("COHERE_MAX_RETRIES", "-1")
	t.Setenv("COHERE_AUTH_STORAGE", "env")
	t.Setenv("COHERE_SESSIONS_DIR", filepath.Join(t.TempDir(), "sessions"))
	return api
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand("1.0.0", "abc123", strings.NewReader(stdin), &out)
	err := cmd.Run(context.Background(), append([]string{"cohere"}, args...))
	return out.String(), err
}

func TestEmbedFromStdin(t *testing.T) {
	api := setup(t)

	out, err := run(t, "first text\n\n", "embed", "--input-type", "search_query")
	require.NoError(t, err)

	body := api.bodies["/v2/embed"]
	assert.Equal(t, "search_query", body["input_type"])
	assert.Equal(t, []any{"first text"}, body["texts"])
	assert.Equal(t, []any{"float"}, body["embedding_types"])

	assert.Contains(t, out, "ID: emb-1")
	assert.Contains(t, out, "[0.5000, 0.2500, 0.1250]")
	assert.Contains(t, out, "Billed units: input_tokens=2")
}

func TestEmbedRejectsUnknownType(t *testing.T) {
	setup(t)
	_, err := run(t, "", "embed", "--type", "float16", "hello")
	assert.ErrorContains(t, err, "unknown embedding type")
}

func TestRerankJSON(t *testing.T) {
	api := setup(t)

	out, err := run(t, "", "--output", "json", "rerank", "-q", "capital", "--top-n", "2", "Paris", "Carson City")
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.bodies["/v2/rerank"]["top_n"])

	var rows []rankedRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, rankedRow{Rank: 1, Index: 1, RelevanceScore: 0.9, Document: "Carson City"}, rows[0])
}

func TestChatOneShot(t *testing.T) {
	api := setup(t)

	out, err := run(t, "", "chat", "--no-stream", "--temperature", "0.7", "--seed", "42", "--safety-mode", "strict", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", out)

	body := api.bodies["/v2/chat"]
	assert.InDelta(t, 0.7, body["temperature"], 1e-6)
	assert.EqualValues(t, 42, body["seed"])
	assert.Equal(t, "STRICT", body["safety_mode"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello world", msgs[0].(map[string]any)["content"])
}

func TestChatOneShotStreaming(t *testing.T) {
	setup(t)

	out, err := run(t, "", "chat", "--preamble", "Be kind.", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", out)
}

func TestChatLegacy(t *testing.T) {
	api := setup(t)

	out, err := run(t, "", "chat", "--legacy", "--preamble", "Be kind.", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "legacy reply")
	assert.Equal(t, "Be kind.", api.bodies["/v1/chat"]["preamble"])
}

func TestChatInteractivePersistsSession(t *testing.T) {
	setup(t)

	out, err := run(t, "hello\n/info\nquit\n", "chat", "--new", "--no-stream")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant: Hi there")
	assert.Contains(t, out, "Messages: 2")

	entries, err := os.ReadDir(os.Getenv("COHERE_SESSIONS_DIR"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestChatInteractiveSummarize(t *testing.T) {
	setup(t)
	require.NoError(t, os.WriteFile("cohere.yaml", []byte(`
summarization:
  recent_count: 1
  condensed_count: 1
`), 0o600))

	out, err := run(t, "one\ntwo\n/stats\n/summarize\n/info\nquit\n", "chat", "--new", "--no-stream")
	require.NoError(t, err)
	assert.Contains(t, out, "To compress:         2")
	assert.Contains(t, out, "Auto-summarization: disabled")
	assert.Contains(t, out, "Summarizing: 2 messages to compress, 1 to condense, keeping 1 recent")
	assert.Contains(t, out, "New message count: 3 (was 4)")
	assert.Contains(t, out, "Messages: 3")
}

func TestChatInteractiveStreaming(t *testing.T) {
	setup(t)

	out, err := run(t, "hello\n/bogus\nexit\n", "chat", "--new")
	require.NoError(t, err)
	assert.Contains(t, out, "assistant: Hi there")
	assert.Contains(t, out, "[tokens in=3 out=2]")
	assert.Contains(t, out, "Unknown command /bogus")
}

func TestChatInteractiveSkipsEmptyStreamedReply(t *testing.T) {
	setup(t)

	out, err := run(t, "say nothing\nhello\n/info\nquit\n", "chat", "--new")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: the model returned an empty reply")
	assert.Contains(t, out, "assistant: Hi there")
	assert.Contains(t, out, "Messages: 2")

	entries, err := os.ReadDir(os.Getenv("COHERE_SESSIONS_DIR"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(os.Getenv("COHERE_SESSIONS_DIR"), entries[0].Name()))
	require.NoError(t, err)
	var saved struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Len(t, saved.Messages, 2)
	assert.Equal(t, "hello", saved.Messages[0].Content)
	assert.Equal(t, "assistant", saved.Messages[1].Role)
	assert.Equal(t, "Hi there", saved.Messages[1].Content)
}

func TestChatOneShotStructuredOutputDoesNotStream(t *testing.T) {
	api := setup(t)

	out, err := run(t, "", "-o", "json", "chat", "hi")
	require.NoError(t, err)
	assert.NotContains(t, api.bodies["/v2/chat"], "stream")

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "c-1", resp["id"])
	assert.Equal(t, "COMPLETE", resp["finish_reason"])
}

func TestModelsYAML(t *testing.T) {
	setup(t)

	out, err := run(t, "", "-o", "yaml", "models", "--endpoint", "chat")
	require.NoError(t, err)

	var models []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &models))
	require.Len(t, models, 1)
	assert.Equal(t, "command-r", models[0]["name"])
	assert.Equal(t, 128000, models[0]["context_length"])
}

func TestModelsRejectsUnknownEndpoint(t *testing.T) {
	setup(t)
	_, err := run(t, "", "models", "--endpoint", "teleport")
	assert.ErrorContains(t, err, "unknown endpoint")
}

func TestSpecCheck(t *testing.T) {
	out, err := run(t, "", "spec", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "/v2/rerank")
}

func TestAuthStatusFromEnv(t *testing.T) {
	setup(t)

	out, err := run(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "from config or COHERE_API_KEY")
	assert.NotContains(t, out, "test-key")
}

func TestAuthLoginRejectsEnvStorage(t *testing.T) {
	setup(t)
	_, err := run(t, "key\n", "auth", "login", "--stdin")
	assert.ErrorContains(t, err, "read-only")
}

func TestAuthLoginFileStorage(t *testing.T) {
	setup(t)
	keyFile := filepath.Join(t.TempDir(), "key")
	t.Setenv("COHERE_AUTH_STORAGE", "file")
	t.Setenv("COHERE_AUTH_FILE", keyFile)
	t.Setenv("COHERE_API_KEY", "")

	_, err := run(t, "stored-key-1234\n", "auth", "login", "--stdin")
	require.NoError(t, err)

	out, err := run(t, "", "-o", "json", "auth", "status")
	require.NoError(t, err)
	var status authStatus
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Contains(t, status.Source, keyFile)

	_, err = run(t, "", "auth", "logout")
	require.NoError(t, err)
	out, err = run(t, "", "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestMCPToolsListing(t *testing.T) {
	setup(t)

	out, err := run(t, "", "mcp", "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "cohere_embed")
	assert.Contains(t, out, "cohere_rerank")
	assert.Contains(t, out, "cohere_chat")
}

func TestMCPCall(t *testing.T) {
	setup(t)

	out, err := run(t, "", "mcp", "call", "cohere_chat", `{"message":"hi"}`)
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", out)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "", "--output", "xml", "spec", "check")
	assert.Error(t, err)
}
