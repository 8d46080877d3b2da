// Package openapi embeds the Cohere API description that the client package is generated from
// and checks that it still describes every operation the client wraps.
package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Spec is the raw OpenAPI document.
//
//go:embed cohere-openapi.yaml
var Spec []byte

// Operation identifies one API operation by method, path and operationId.
type Operation struct {
	Method      string
	Path        string
	OperationID string
}

// Operations lists the operations the generated client is expected to expose.
var Operations = []Operation{
	{Method: http.MethodPost, Path: "/v1/chat", OperationID: "chat"},
	{Method: http.MethodPost, Path: "/v2/chat", OperationID: "chatv2"},
	{Method: http.MethodPost, Path: "/v2/embed", OperationID: "embedv2"},
	{Method: http.MethodPost, Path: "/v2/rerank", OperationID: "rerankv2"},
	{Method: http.MethodGet, Path: "/v1/models", OperationID: "list-models"},
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	return LoadData(ctx, Spec)
}

// LoadData parses and validates an OpenAPI document.
func LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// CheckOperations reports every expected operation missing from doc or registered
// under a different operationId.
func CheckOperations(doc *openapi3.T, expected []Operation) error {
	if doc == nil || doc.Paths == nil {
		return errors.New("document has no paths")
	}

	var errs []error
	for _, op := range expected {
		item := doc.Paths.Find(op.Path)
		if item == nil {
			errs = append(errs, fmt.Errorf("missing path %s", op.Path))
			continue
		}
		operation := item.GetOperation(op.Method)
		if operation == nil {
			errs = append(errs, fmt.Errorf("missing operation %s %s", op.Method, op.Path))
			continue
		}
		if operation.OperationID != op.OperationID {
			errs = append(errs, fmt.Errorf("%s %s: operationId %q, want %q", op.Method, op.Path, operation.OperationID, op.OperationID))
		}
	}
	return errors.Join(errs...)
}

// SchemaNames returns the component schema names in sorted order.
func SchemaNames(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line summary per expected operation, for CLI output.
func Describe(doc *openapi3.T, expected []Operation) []string {
	lines := make([]string, 0, len(expected))
	for _, op := range expected {
		summary := ""
		if item := doc.Paths.Find(op.Path); item != nil {
			if operation := item.GetOperation(op.Method); operation != nil {
				summary = strings.TrimSpace(operation.Summary)
			}
		}
		lines = append(lines, fmt.Sprintf("%-6s %-12s %-12s %s", op.Method, op.Path, op.OperationID, summary))
	}
	return lines
}
