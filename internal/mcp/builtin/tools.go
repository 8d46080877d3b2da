// Package builtin provides the in-process MCP tools backed by the Cohere API.
// Tools are registered with mcp.DefaultToolRegistry at init time.
package builtin

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	cohere "github.com/PAIR-Systems-Inc/cohere4go"
	"github.com/PAIR-Systems-Inc/cohere4go/internal/mcp"
)

// Tool names.
const (
	EmbedTool  = "cohere_embed"
	RerankTool = "cohere_rerank"
	ChatTool   = "cohere_chat"
)

func init() {
	Register(mcp.DefaultToolRegistry)
}

// rankedDocument is the JSON shape of a rerank tool result entry.
type rankedDocument struct {
	Index    int     `json:"index"`
	Score    float32 `json:"relevance_score"`
	Document string  `json:"document"`
}

// embedResult is the JSON shape of an embed tool result.
type embedResult struct {
	ID         string                               `json:"id"`
	Embeddings cohere.EmbedByTypeResponseEmbeddings `json:"embeddings"`
	Meta       *cohere.ApiMeta                      `json:"meta,omitempty"`
}

// Register adds the Cohere tools to registry.
func Register(registry *mcp.ToolRegistry) {
	registry.Register(
		mcplib.NewTool(EmbedTool,
			mcplib.WithDescription("Computes Cohere embeddings for a list of texts"),
			mcplib.WithArray("texts",
				mcplib.Required(),
				mcplib.Description("Texts to embed"),
				mcplib.WithStringItems(),
			),
			mcplib.WithString("input_type",
				mcplib.Description("How the embeddings will be used. Default: search_document"),
				mcplib.Enum(enumStrings(cohere.EmbedInputTypes)...),
			),
			mcplib.WithString("embedding_type",
				mcplib.Description("Encoding of the returned vectors. Default: float"),
				mcplib.Enum(enumStrings(cohere.EmbeddingTypes)...),
			),
		),
		embedHandler,
	)

	registry.Register(
		mcplib.NewTool(RerankTool,
			mcplib.WithDescription("Orders documents by relevance to a query using Cohere rerank"),
			mcplib.WithString("query",
				mcplib.Required(),
				mcplib.Description("The search query"),
			),
			mcplib.WithArray("documents",
				mcplib.Required(),
				mcplib.Description("Documents to rank"),
				mcplib.WithStringItems(),
			),
			mcplib.WithNumber("top_n",
				mcplib.Description("Number of results to return (optional). Default: all documents"),
			),
		),
		rerankHandler,
	)

	registry.Register(
		mcplib.NewTool(ChatTool,
			mcplib.WithDescription("Sends a single message to a Cohere chat model and returns its reply"),
			mcplib.WithString("message",
				mcplib.Required(),
				mcplib.Description("The user message"),
			),
			mcplib.WithString("preamble",
				mcplib.Description("System instructions placed before the message (optional)"),
			),
		),
		chatHandler,
	)
}

func embedHandler(client *cohere.CohereClient) mcp.ToolHandler {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := GetArgs(req)
		if err != nil {
			return nil, err
		}
		texts, err := GetStringSliceArg(args, "texts")
		if err != nil {
			return nil, err
		}
		inputType, err := cohere.ParseEmbedInputType(GetOptionalStringArg(args, "input_type", string(cohere.EmbedInputTypeSearchDocument)))
		if err != nil {
			return nil, err
		}
		embeddingType, err := cohere.ParseEmbeddingType(GetOptionalStringArg(args, "embedding_type", string(cohere.EmbeddingTypeFloat)))
		if err != nil {
			return nil, err
		}

		resp, err := client.EmbedTexts(ctx, texts, inputType, embeddingType)
		if err != nil {
			return mcplib.NewToolResultError(fmt.Sprintf("embed failed: %v", err)), nil
		}
		return jsonResult(embedResult{ID: resp.Id, Embeddings: resp.Embeddings, Meta: resp.Meta})
	}
}

func rerankHandler(client *cohere.CohereClient) mcp.ToolHandler {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := GetArgs(req)
		if err != nil {
			return nil, err
		}
		query, err := GetStringArg(args, "query")
		if err != nil {
			return nil, err
		}
		docs, err := GetStringSliceArg(args, "documents")
		if err != nil {
			return nil, err
		}
		topN, err := GetOptionalIntArg(args, "top_n", 0)
		if err != nil {
			return nil, err
		}

		ranked, err := client.RerankDocuments(ctx, query, docs, topN)
		if err != nil {
			return mcplib.NewToolResultError(fmt.Sprintf("rerank failed: %v", err)), nil
		}

		out := make([]rankedDocument, len(ranked))
		for i, r := range ranked {
			out[i] = rankedDocument{Index: r.Index, Score: r.Score, Document: r.Document}
		}
		return jsonResult(out)
	}
}

func chatHandler(client *cohere.CohereClient) mcp.ToolHandler {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := GetArgs(req)
		if err != nil {
			return nil, err
		}
		message, err := GetStringArg(args, "message")
		if err != nil {
			return nil, err
		}

		var messages []cohere.ChatMessageV2
		if preamble := GetOptionalStringArg(args, "preamble", ""); preamble != "" {
			messages = append(messages, cohere.SystemMessage(preamble))
		}
		messages = append(messages, cohere.UserMessage(message))

		reply, err := client.ChatX(ctx, messages)
		if err != nil {
			return mcplib.NewToolResultError(fmt.Sprintf("chat failed: %v", err)), nil
		}
		return mcplib.NewToolResultText(reply), nil
	}
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
