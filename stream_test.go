package cohere

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStream = `event: message-start
data: {"type":"message-start","id":"chat-1","delta":{"message":{"role":"assistant"}}}

: keep-alive

event: content-delta
data: {"type":"content-delta","index":0,"delta":{"message":{"content":{"type":"text","text":"Hello"}}}}

event: content-delta
data: {"type":"content-delta","index":0,"delta":{"message":{"content":{"type":"text","text":", world"}}}}

event: message-end
data: {"type":"message-end","delta":{"finish_reason":"COMPLETE","usage":{"tokens":{"input_tokens":3,"output_tokens":2}}}}

event: content-delta
data: {"type":"content-delta","delta":{"message":{"content":{"type":"text","text":"ignored"}}}}

`

func TestDecodeEvents(t *testing.T) {
	var types []StreamedChatResponseV2Type
	for event, err := range decodeEvents(strings.NewReader(sampleStream)) {
		require.NoError(t, err)
		types = append(types, event.Type)
	}
	assert.Equal(t, []StreamedChatResponseV2Type{
		StreamedChatResponseV2TypeMessageStart,
		StreamedChatResponseV2TypeContentDelta,
		StreamedChatResponseV2TypeContentDelta,
		StreamedChatResponseV2TypeMessageEnd,
		StreamedChatResponseV2TypeContentDelta,
	}, types)
}

func TestDecodeEventsJoinsMultilineData(t *testing.T) {
	input := "data: {\"type\":\ndata: \"debug\"}\n\n"
	var got []*StreamedChatResponseV2
	for event, err := range decodeEvents(strings.NewReader(input)) {
		require.NoError(t, err)
		got = append(got, event)
	}
	require.Len(t, got, 1)
	assert.Equal(t, StreamedChatResponseV2TypeDebug, got[0].Type)
}

func TestDecodeEventsWithoutTrailingBlankLine(t *testing.T) {
	input := `data: {"type":"message-end"}`
	var got int
	for _, err := range decodeEvents(strings.NewReader(input)) {
		require.NoError(t, err)
		got++
	}
	assert.Equal(t, 1, got)
}

func TestDecodeEventsReportsBadJSON(t *testing.T) {
	var errs []error
	for _, err := range decodeEvents(strings.NewReader("data: {not json}\n\ndata: {\"type\":\"debug\"}\n\n")) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "failed to decode stream event")
}

func TestChatStream(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeBody[Chatv2Request](t, r)
		require.NotNil(t, req.Stream)
		assert.True(t, *req.Stream)
		assert.Equal(t, DefaultChatModel, req.Model)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, sampleStream)
	})

	stream, err := c.ChatStream(context.Background(), Chatv2Request{Messages: []ChatMessageV2{UserMessage("hi")}})
	require.NoError(t, err)

	var printed []string
	summary, err := CollectStream(stream, func(s string) { printed = append(printed, s) })
	require.NoError(t, err)

	assert.Equal(t, "chat-1", summary.ID)
	assert.Equal(t, "Hello, world", summary.Text)
	assert.Equal(t, []string{"Hello", ", world"}, printed)
	require.NotNil(t, summary.FinishReason)
	assert.Equal(t, ChatFinishReasonCOMPLETE, *summary.FinishReason)
	require.NotNil(t, summary.Usage)
	assert.Equal(t, 2.0, *summary.Usage.Tokens.OutputTokens)
}

func TestChatStreamStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, Error{Message: "invalid api token"})
	})

	stream, err := c.ChatStream(context.Background(), Chatv2Request{Messages: []ChatMessageV2{UserMessage("hi")}})
	assert.Nil(t, stream)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid api token", apiErr.Message)
	assert.False(t, apiErr.IsRetryable())
}

func TestChatStreamEarlyBreak(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, sampleStream)
	})

	stream, err := c.ChatStream(context.Background(), Chatv2Request{Messages: []ChatMessageV2{UserMessage("hi")}})
	require.NoError(t, err)

	var seen int
	for range stream {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCollectStreamReportsStreamError(t *testing.T) {
	input := `data: {"type":"message-end","delta":{"finish_reason":"ERROR","error":"model overloaded"}}` + "\n\n"
	summary, err := CollectStream(decodeEvents(strings.NewReader(input)), nil)
	assert.ErrorContains(t, err, "model overloaded")
	require.NotNil(t, summary.FinishReason)
	assert.Equal(t, ChatFinishReasonERROR, *summary.FinishReason)
}

func TestDeltaText(t *testing.T) {
	assert.Empty(t, DeltaText(nil))
	assert.Empty(t, DeltaText(&StreamedChatResponseV2{Type: StreamedChatResponseV2TypeMessageStart}))
	assert.Equal(t, "x", DeltaText(&StreamedChatResponseV2{
		Type:  StreamedChatResponseV2TypeContentDelta,
		Delta: &ChatStreamDelta{Message: &ChatStreamDeltaMessage{Content: &AssistantMessageResponseContentItem{Text: ptr("x")}}},
	}))
}
