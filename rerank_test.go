package cohere

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRerankDocuments(t *testing.T) {
	docs := []string{
		"Carson City is the capital city of the American state of Nevada.",
		"Washington, D.C. is the capital of the United States.",
		"Capital punishment has existed in the United States since before it was a country.",
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeBody[Rerankv2Request](t, r)
		assert.Equal(t, "What is the capital of the United States?", req.Query)
		assert.Equal(t, docs, req.Documents)
		require.NotNil(t, req.TopN)
		assert.Equal(t, 2, *req.TopN)
		writeJSON(t, w, http.StatusOK, Rerankv2Response{
			Id: ptr("rr-1"),
			Results: []RerankResult{
				{Index: 1, RelevanceScore: 0.98},
				{Index: 0, RelevanceScore: 0.12},
			},
		})
	})

	ranked, err := c.RerankDocuments(context.Background(), "What is the capital of the United States?", docs, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, RankedDocument{Index: 1, Score: 0.98, Document: docs[1]}, ranked[0])
	assert.Equal(t, RankedDocument{Index: 0, Score: 0.12, Document: docs[0]}, ranked[1])
}

func TestRerankDocumentsAllWhenTopNUnset(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeBody[Rerankv2Request](t, r)
		assert.Nil(t, req.TopN)
		writeJSON(t, w, http.StatusOK, Rerankv2Response{Results: []RerankResult{{Index: 0, RelevanceScore: 0.5}}})
	})

	ranked, err := c.RerankDocuments(context.Background(), "q", []string{"only"}, 0)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}

func TestRankDocumentsRejectsBadIndex(t *testing.T) {
	_, err := rankDocuments([]RerankResult{{Index: 3}}, []string{"a", "b"})
	assert.EqualError(t, err, "rerank result index 3 out of range for 2 documents")
}
