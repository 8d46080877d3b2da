package cohere

import (
	"fmt"
	"slices"
	"strings"
)

// EmbedInputTypes lists the accepted embed input types.
var EmbedInputTypes = []EmbedInputType{
	EmbedInputTypeSearchDocument,
	EmbedInputTypeSearchQuery,
	EmbedInputTypeClassification,
	EmbedInputTypeClustering,
	EmbedInputTypeImage,
}

// EmbeddingTypes lists the accepted embedding encodings.
var EmbeddingTypes = []EmbeddingType{
	EmbeddingTypeFloat,
	EmbeddingTypeInt8,
	EmbeddingTypeUint8,
	EmbeddingTypeBinary,
	EmbeddingTypeUbinary,
	EmbeddingTypeBase64,
}

// CompatibleEndpoints lists the endpoints a model listing can be filtered by.
var CompatibleEndpoints = []CompatibleEndpoint{
	CompatibleEndpointChat,
	CompatibleEndpointEmbed,
	CompatibleEndpointClassify,
	CompatibleEndpointSummarize,
	CompatibleEndpointRerank,
	CompatibleEndpointRate,
	CompatibleEndpointGenerate,
}

// ParseEmbedInputType parses an input type such as "search_document".
func ParseEmbedInputType(s string) (EmbedInputType, error) {
	return parseEnum("input type", EmbedInputType(strings.ToLower(s)), EmbedInputTypes)
}

// ParseEmbeddingType parses an embedding type such as "float".
func ParseEmbeddingType(s string) (EmbeddingType, error) {
	return parseEnum("embedding type", EmbeddingType(strings.ToLower(s)), EmbeddingTypes)
}

// ParseTruncate parses NONE, START or END, case-insensitively.
func ParseTruncate(s string) (Embedv2RequestTruncate, error) {
	return parseEnum("truncate mode", Embedv2RequestTruncate(strings.ToUpper(s)), []Embedv2RequestTruncate{
		Embedv2RequestTruncateNONE,
		Embedv2RequestTruncateSTART,
		Embedv2RequestTruncateEND,
	})
}

// ParseSafetyMode parses CONTEXTUAL, STRICT or OFF, case-insensitively.
func ParseSafetyMode(s string) (Chatv2RequestSafetyMode, error) {
	return parseEnum("safety mode", Chatv2RequestSafetyMode(strings.ToUpper(s)), []Chatv2RequestSafetyMode{
		Chatv2RequestSafetyModeCONTEXTUAL,
		Chatv2RequestSafetyModeSTRICT,
		Chatv2RequestSafetyModeOFF,
	})
}

// ParseCitationMode parses FAST, ACCURATE or OFF, case-insensitively.
func ParseCitationMode(s string) (CitationOptionsMode, error) {
	return parseEnum("citation mode", CitationOptionsMode(strings.ToUpper(s)), []CitationOptionsMode{
		CitationOptionsModeFAST,
		CitationOptionsModeACCURATE,
		CitationOptionsModeOFF,
	})
}

// ParseCompatibleEndpoint parses an endpoint name such as "chat", case-insensitively.
func ParseCompatibleEndpoint(s string) (CompatibleEndpoint, error) {
	return parseEnum("endpoint", CompatibleEndpoint(strings.ToLower(s)), CompatibleEndpoints)
}

func parseEnum[T ~string](kind string, v T, all []T) (T, error) {
	if slices.Contains(all, v) {
		return v, nil
	}
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = string(a)
	}
	return "", fmt.Errorf("unknown %s %q (expected: %s)", kind, string(v), strings.Join(names, ", "))
}
