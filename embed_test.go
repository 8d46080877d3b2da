package cohere

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitBatchesPreservesOrder verifies that concatenating the batches
// yields the input and no batch exceeds the size.
func TestSplitBatchesPreservesOrder(t *testing.T) {
	property := func(texts []string, size uint8) bool {
		n := int(size%MaxEmbedBatchSize) + 1
		batches := splitBatches(texts, n)

		var joined []string
		for _, b := range batches {
			if len(b) == 0 || len(b) > n {
				return false
			}
			joined = append(joined, b...)
		}
		if len(joined) != len(texts) {
			return false
		}
		for i := range texts {
			if joined[i] != texts[i] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestEmbedBatchedMergesInInputOrder(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		req := decodeBody[Embedv2Request](t, r)
		require.NotNil(t, req.Texts)
		assert.LessOrEqual(t, len(*req.Texts), MaxEmbedBatchSize)

		// Encode each text's index as its single embedding value.
		vectors := make([][]float64, len(*req.Texts))
		for i, text := range *req.Texts {
			n, err := strconv.Atoi(text)
			require.NoError(t, err)
			vectors[i] = []float64{float64(n)}
		}
		writeJSON(t, w, http.StatusOK, EmbedByTypeResponse{
			Id:         "embed-" + (*req.Texts)[0],
			Embeddings: EmbedByTypeResponseEmbeddings{Float: &vectors},
			Texts:      req.Texts,
			Meta: &ApiMeta{
				ApiVersion:  &ApiMetaApiVersion{Version: "2"},
				BilledUnits: &ApiMetaBilledUnits{InputTokens: ptr(float64(len(*req.Texts)))},
			},
		})
	})

	texts := make([]string, 250)
	for i := range texts {
		texts[i] = strconv.Itoa(i)
	}

	resp, err := c.EmbedTexts(context.Background(), texts, EmbedInputTypeSearchDocument)
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "embed-0", resp.Id)
	require.NotNil(t, resp.Embeddings.Float)
	require.Len(t, *resp.Embeddings.Float, len(texts))
	for i, v := range *resp.Embeddings.Float {
		assert.Equal(t, float64(i), v[0])
	}
	require.NotNil(t, resp.Texts)
	assert.Equal(t, texts, *resp.Texts)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, "2", resp.Meta.ApiVersion.Version)
	assert.Equal(t, float64(250), *resp.Meta.BilledUnits.InputTokens)
}

func TestEmbedBatchedFailsOnAnyBatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeBody[Embedv2Request](t, r)
		if (*req.Texts)[0] == "96" {
			writeJSON(t, w, http.StatusBadRequest, Error{Message: "bad batch"})
			return
		}
		writeJSON(t, w, http.StatusOK, EmbedByTypeResponse{Id: "ok"})
	})

	texts := make([]string, 100)
	for i := range texts {
		texts[i] = strconv.Itoa(i)
	}

	_, err := c.EmbedTexts(context.Background(), texts, EmbedInputTypeSearchDocument)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad batch", apiErr.Message)
	assert.Contains(t, err.Error(), "batch 1")
}

func TestEmbedTextsDefaultsToFloat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeBody[Embedv2Request](t, r)
		require.NotNil(t, req.EmbeddingTypes)
		assert.Equal(t, []EmbeddingType{EmbeddingTypeFloat}, *req.EmbeddingTypes)
		assert.Equal(t, EmbedInputTypeClassification, req.InputType)
		writeJSON(t, w, http.StatusOK, EmbedByTypeResponse{Id: "e"})
	})

	_, err := c.EmbedTexts(context.Background(), []string{"a"}, EmbedInputTypeClassification)
	require.NoError(t, err)
}

func TestMergeMetaSumsUnits(t *testing.T) {
	a := &ApiMeta{BilledUnits: &ApiMetaBilledUnits{InputTokens: ptr(3.0)}, Warnings: &[]string{"w1"}}
	b := &ApiMeta{BilledUnits: &ApiMetaBilledUnits{InputTokens: ptr(4.0), SearchUnits: ptr(1.0)}, Warnings: &[]string{"w2"}}

	merged := mergeMeta(mergeMeta(nil, a), b)
	assert.Equal(t, 7.0, *merged.BilledUnits.InputTokens)
	assert.Equal(t, 1.0, *merged.BilledUnits.SearchUnits)
	assert.Nil(t, merged.BilledUnits.OutputTokens)
	assert.Equal(t, []string{"w1", "w2"}, *merged.Warnings)
	assert.Equal(t, 3.0, *a.BilledUnits.InputTokens)
}
