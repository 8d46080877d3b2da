package cohere

import (
	"context"
	"fmt"
)

// RankedDocument is a rerank result joined with the document it scores.
type RankedDocument struct {
	Index    int
	Score    float32
	Document string
}

// Rerank sends a rerank request. An empty model takes the configured default.
func (c *CohereClient) Rerank(ctx context.Context, req Rerankv2Request) (*Rerankv2Response, error) {
	if req.Model == "" {
		req.Model = c.rerankModel
	}

	resp, err := c.client.Rerankv2WithResponse(ctx, &Rerankv2Params{XClientName: c.clientName}, req)
	if err != nil {
		return nil, fmt.Errorf("failed to send rerank request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, newAPIError(resp.HTTPResponse, resp.Body,
			resp.JSON400, resp.JSON401, resp.JSON403, resp.JSON404,
			resp.JSON422, resp.JSON429, resp.JSON500, resp.JSON503)
	}
	return resp.JSON200, nil
}

// RerankDocuments ranks docs against query and returns them most relevant
// first. A topN of zero or less returns every document.
func (c *CohereClient) RerankDocuments(ctx context.Context, query string, docs []string, topN int) ([]RankedDocument, error) {
	req := Rerankv2Request{
		Query:     query,
		Documents: docs,
	}
	if topN > 0 {
		req.TopN = &topN
	}

	resp, err := c.Rerank(ctx, req)
	if err != nil {
		return nil, err
	}
	return rankDocuments(resp.Results, docs)
}

func rankDocuments(results []RerankResult, docs []string) ([]RankedDocument, error) {
	ranked := make([]RankedDocument, 0, len(results))
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(docs) {
			return nil, fmt.Errorf("rerank result index %d out of range for %d documents", r.Index, len(docs))
		}
		ranked = append(ranked, RankedDocument{
			Index:    r.Index,
			Score:    r.RelevanceScore,
			Document: docs[r.Index],
		})
	}
	return ranked, nil
}
