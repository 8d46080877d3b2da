package cohere

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
)

// maxEventSize bounds a single server-sent event line.
const maxEventSize = 1 << 20

// ChatStream sends req with streaming enabled. Request and status errors are
// returned immediately; decoding errors surface through the sequence, which
// ends after the message-end event or at EOF. Breaking out of the loop
// closes the connection.
func (c *CohereClient) ChatStream(ctx context.Context, req Chatv2Request) (iter.Seq2[*StreamedChatResponseV2, error], error) {
	if req.Model == "" {
		req.Model = c.chatModel
	}
	stream := true
	req.Stream = &stream

	rsp, err := c.client.Chatv2(ctx, &Chatv2Params{XClientName: c.clientName}, req, func(ctx context.Context, r *http.Request) error {
		r.Header.Set("Accept", "text/event-stream")
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}
	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		parsed, err := ParseChatv2Result(rsp)
		if err != nil {
			return nil, newAPIError(rsp, nil)
		}
		return nil, newAPIError(parsed.HTTPResponse, parsed.Body,
			parsed.JSON400, parsed.JSON401, parsed.JSON403, parsed.JSON404,
			parsed.JSON422, parsed.JSON429, parsed.JSON500, parsed.JSON503)
	}

	return func(yield func(*StreamedChatResponseV2, error) bool) {
		defer func() { _ = rsp.Body.Close() }()
		for event, err := range decodeEvents(rsp.Body) {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(event, nil) {
				return
			}
			if event.Type == StreamedChatResponseV2TypeMessageEnd {
				return
			}
		}
	}, nil
}

// decodeEvents reads server-sent events from r. Consecutive data lines of
// one event are joined with newlines; comments, event names and ids are
// ignored since the payload carries its own type.
func decodeEvents(r io.Reader) iter.Seq2[*StreamedChatResponseV2, error] {
	return func(yield func(*StreamedChatResponseV2, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

		var data bytes.Buffer
		flush := func() bool {
			if data.Len() == 0 {
				return true
			}
			payload := bytes.TrimSpace(data.Bytes())
			data.Reset()
			if len(payload) == 0 || bytes.Equal(payload, []byte("[DONE]")) {
				return true
			}
			var event StreamedChatResponseV2
			if err := json.Unmarshal(payload, &event); err != nil {
				yield(nil, fmt.Errorf("failed to decode stream event: %w", err))
				return false
			}
			return yield(&event, nil)
		}

		for scanner.Scan() {
			line := scanner.Bytes()
			switch {
			case len(line) == 0:
				if !flush() {
					return
				}
			case line[0] == ':':
				// comment
			case bytes.HasPrefix(line, []byte("data:")):
				if data.Len() > 0 {
					data.WriteByte('\n')
				}
				data.Write(bytes.TrimPrefix(line[len("data:"):], []byte(" ")))
			case line[0] == '{':
				// Some proxies strip the SSE framing and send bare JSON lines.
				data.Write(line)
				if !flush() {
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read stream: %w", err))
			return
		}
		flush()
	}
}

// DeltaText returns the text carried by a content-delta event.
func DeltaText(event *StreamedChatResponseV2) string {
	if event == nil || event.Type != StreamedChatResponseV2TypeContentDelta {
		return ""
	}
	if event.Delta == nil || event.Delta.Message == nil || event.Delta.Message.Content == nil {
		return ""
	}
	return derefString(event.Delta.Message.Content.Text)
}

// CollectStream drains a stream into the concatenated text and the final
// finish reason and usage from message-end.
func CollectStream(stream iter.Seq2[*StreamedChatResponseV2, error], onText func(string)) (*StreamSummary, error) {
	summary := &StreamSummary{}
	for event, err := range stream {
		if err != nil {
			return summary, err
		}
		switch event.Type {
		case StreamedChatResponseV2TypeMessageStart:
			summary.ID = derefString(event.Id)
		case StreamedChatResponseV2TypeContentDelta:
			text := DeltaText(event)
			summary.Text += text
			if onText != nil && text != "" {
				onText(text)
			}
		case StreamedChatResponseV2TypeMessageEnd:
			if event.Delta != nil {
				summary.FinishReason = event.Delta.FinishReason
				summary.Usage = event.Delta.Usage
				if event.Delta.Error != nil {
					return summary, fmt.Errorf("stream ended with error: %s", *event.Delta.Error)
				}
			}
		}
	}
	return summary, nil
}

// StreamSummary is the outcome of CollectStream.
type StreamSummary struct {
	ID           string
	Text         string
	FinishReason *ChatFinishReason
	Usage        *Usage
}
