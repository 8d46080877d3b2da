package cohere

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MaxEmbedBatchSize is the largest number of texts the embed endpoint accepts per call.
const MaxEmbedBatchSize = 96

// maxEmbedConcurrency bounds the batches EmbedBatched has in flight.
const maxEmbedConcurrency = 4

// Embed sends an embed request. An empty model takes the configured default.
func (c *CohereClient) Embed(ctx context.Context, req Embedv2Request) (*EmbedByTypeResponse, error) {
	if req.Model == "" {
		req.Model = c.embedModel
	}

	resp, err := c.client.Embedv2WithResponse(ctx, &Embedv2Params{XClientName: c.clientName}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to send embed request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.HTTPResponse, resp.Body,
			resp.JSON400, resp.JSON401, resp.JSON403, resp.JSON404,
			resp.JSON422, resp.JSON429, resp.JSON500, resp.JSON503)
	}
	return resp.JSON200, nil
}

// EmbedTexts embeds texts with the default model. With no types given, float
// embeddings are requested.
func (c *CohereClient) EmbedTexts(ctx context.Context, texts []string, inputType EmbedInputType, types ...EmbeddingType) (*EmbedByTypeResponse, error) {
	if len(types) == 0 {
		types = []EmbeddingType{EmbeddingTypeFloat}
	}
	return c.EmbedBatched(ctx, Embedv2Request{
		Texts:          &texts,
		InputType:      inputType,
		EmbeddingTypes: &types,
	})
}

// EmbedBatched embeds any number of texts by splitting them into batches of
// MaxEmbedBatchSize sent concurrently. Embeddings come back in input order.
func (c *CohereClient) EmbedBatched(ctx context.Context, req Embedv2Request) (*EmbedByTypeResponse, error) {
	if req.Texts == nil || len(*req.Texts) <= MaxEmbedBatchSize {
		return c.Embed(ctx, req)
	}
	if req.Images != nil && len(*req.Images) > 0 {
		return nil, errors.New("cohere: texts and images cannot be batched together")
	}

	batches := splitBatches(*req.Texts, MaxEmbedBatchSize)
	results := make([]*EmbedByTypeResponse, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxEmbedConcurrency)
	for i, batch := range batches {
		g.Go(func() error {
			part := req
			part.Texts = &batch
			resp, err := c.Embed(gctx, part)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "embedded texts in batches", "texts", len(*req.Texts), "batches", len(batches))
	return mergeEmbedResponses(results), nil
}

func splitBatches(texts []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		batches = append(batches, texts[start:end:end])
	}
	return batches
}

func mergeEmbedResponses(parts []*EmbedByTypeResponse) *EmbedByTypeResponse {
	merged := &EmbedByTypeResponse{Id: parts[0].Id}
	for _, p := range parts {
		e := p.Embeddings
		merged.Embeddings.Float = appendPtr(merged.Embeddings.Float, e.Float)
		merged.Embeddings.Int8 = appendPtr(merged.Embeddings.Int8, e.Int8)
		merged.Embeddings.Uint8 = appendPtr(merged.Embeddings.Uint8, e.Uint8)
		merged.Embeddings.Binary = appendPtr(merged.Embeddings.Binary, e.Binary)
		merged.Embeddings.Ubinary = appendPtr(merged.Embeddings.Ubinary, e.Ubinary)
		merged.Embeddings.Base64 = appendPtr(merged.Embeddings.Base64, e.Base64)
		merged.Texts = appendPtr(merged.Texts, p.Texts)
		merged.Meta = mergeMeta(merged.Meta, p.Meta)
	}
	return merged
}

func appendPtr[T any](dst, src *[]T) *[]T {
	if src == nil {
		return dst
	}
	if dst == nil {
		out := append([]T(nil), *src...)
		return &out
	}
	*dst = append(*dst, *src...)
	return dst
}

// mergeMeta keeps the first API version and sums billed units and tokens.
func mergeMeta(dst, src *ApiMeta) *ApiMeta {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = &ApiMeta{ApiVersion: src.ApiVersion}
	}
	if src.BilledUnits != nil {
		if dst.BilledUnits == nil {
			dst.BilledUnits = &ApiMetaBilledUnits{}
		}
		dst.BilledUnits.InputTokens = addPtr(dst.BilledUnits.InputTokens, src.BilledUnits.InputTokens)
		dst.BilledUnits.OutputTokens = addPtr(dst.BilledUnits.OutputTokens, src.BilledUnits.OutputTokens)
		dst.BilledUnits.SearchUnits = addPtr(dst.BilledUnits.SearchUnits, src.BilledUnits.SearchUnits)
		dst.BilledUnits.Classifications = addPtr(dst.BilledUnits.Classifications, src.BilledUnits.Classifications)
	}
	if src.Tokens != nil {
		if dst.Tokens == nil {
			dst.Tokens = &ApiMetaTokens{}
		}
		dst.Tokens.InputTokens = addPtr(dst.Tokens.InputTokens, src.Tokens.InputTokens)
		dst.Tokens.OutputTokens = addPtr(dst.Tokens.OutputTokens, src.Tokens.OutputTokens)
	}
	if src.Warnings != nil {
		dst.Warnings = appendPtr(dst.Warnings, src.Warnings)
	}
	return dst
}

func addPtr(a, b *float64) *float64 {
	if b == nil {
		return a
	}
	sum := *b
	if a != nil {
		sum += *a
	}
	return &sum
}
