package cohere

import (
	"context"
	"fmt"
)

// Chat sends a chat request and returns the complete response. An empty
// model takes the configured default; streaming is always turned off, use
// ChatStream for server-sent events.
func (c *CohereClient) Chat(ctx context.Context, req Chatv2Request) (*ChatResponseV2, error) {
	if req.Model == "" {
		req.Model = c.chatModel
	}
	req.Stream = nil

	resp, err := c.client.Chatv2WithResponse(ctx, &Chatv2Params{XClientName: c.clientName}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.HTTPResponse, resp.Body,
			resp.JSON400, resp.JSON401, resp.JSON403, resp.JSON404,
			resp.JSON422, resp.JSON429, resp.JSON500, resp.JSON503)
	}

	c.logger.DebugContext(ctx, "chat completed", "id", resp.JSON200.Id, "finish_reason", resp.JSON200.FinishReason)
	return resp.JSON200, nil
}

// ChatX sends messages with the default model and returns the text of the
// first text content block. Returns ErrEmptyResponse if there is none.
func (c *CohereClient) ChatX(ctx context.Context, messages []ChatMessageV2) (string, error) {
	resp, err := c.Chat(ctx, Chatv2Request{Messages: messages})
	if err != nil {
		return "", err
	}
	return ResponseText(resp)
}

// ResponseText extracts the first text block of a chat response.
// Returns ErrEmptyResponse if the response has no text content.
func ResponseText(resp *ChatResponseV2) (string, error) {
	if resp == nil || resp.Message.Content == nil {
		return "", ErrEmptyResponse
	}
	for _, item := range *resp.Message.Content {
		if item.Type == AssistantMessageResponseContentItemTypeText && item.Text != nil && *item.Text != "" {
			return *item.Text, nil
		}
	}
	return "", ErrEmptyResponse
}

// LegacyChat calls the v1 single-message chat endpoint.
func (c *CohereClient) LegacyChat(ctx context.Context, req ChatRequest) (*NonStreamedChatResponse, error) {
	if req.Model == nil || *req.Model == "" {
		model := c.chatModel
		req.Model = &model
	}
	req.Stream = nil

	resp, err := c.client.ChatWithResponse(ctx, &ChatParams{XClientName: c.clientName}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to send chat request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.HTTPResponse, resp.Body,
			resp.JSON400, resp.JSON401, resp.JSON403, resp.JSON404,
			resp.JSON422, resp.JSON429, resp.JSON500, resp.JSON503)
	}
	return resp.JSON200, nil
}

// ListModels lists the models available to the API key.
func (c *CohereClient) ListModels(ctx context.Context, params *ListModelsParams) (*ListModelsResponse, error) {
	if params == nil {
		params = &ListModelsParams{}
	}

	resp, err := c.client.ListModelsWithResponse(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.HTTPResponse, resp.Body,
			resp.JSON400, resp.JSON401, resp.JSON403, resp.JSON404,
			resp.JSON422, resp.JSON429, resp.JSON500, resp.JSON503)
	}
	return resp.JSON200, nil
}
