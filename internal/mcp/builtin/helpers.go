package builtin

import (
	"encoding/json"
	"fmt"
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// GetArgs extracts the arguments map from a CallToolRequest.
// Returns an error if the arguments are not in the expected format.
func GetArgs(req mcplib.CallToolRequest) (map[string]any, error) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid arguments format")
	}
	return args, nil
}

// GetStringArg extracts a required string argument from the arguments map.
// Returns an error if the argument is missing or not a string.
func GetStringArg(args map[string]any, name string) (string, error) {
	val, ok := args[name].(string)
	if !ok {
		return "", fmt.Errorf("%s argument is required and must be a string", name)
	}
	return val, nil
}

// GetOptionalStringArg extracts an optional string argument from the arguments map.
// Returns the default value if the argument is missing or not a string.
func GetOptionalStringArg(args map[string]any, name string, defaultVal string) string {
	if val, ok := args[name].(string); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetRequiredStringArg is a convenience function that combines GetArgs and GetStringArg.
// It extracts a required string argument directly from a CallToolRequest.
func GetRequiredStringArg(req mcplib.CallToolRequest, name string) (string, error) {
	args, err := GetArgs(req)
	if err != nil {
		return "", err
	}
	return GetStringArg(args, name)
}

// GetStringSliceArg extracts a required, non-empty array of strings.
// Arguments decoded from JSON arrive as []any; []string is accepted too.
func GetStringSliceArg(args map[string]any, name string) ([]string, error) {
	switch val := args[name].(type) {
	case []string:
		if len(val) == 0 {
			return nil, fmt.Errorf("%s argument must not be empty", name)
		}
		return val, nil
	case []any:
		if len(val) == 0 {
			return nil, fmt.Errorf("%s argument must not be empty", name)
		}
		out := make([]string, len(val))
		for i, v := range val {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", name, i)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s argument is required and must be an array of strings", name)
	}
}

// GetOptionalIntArg extracts an optional integer argument.
// JSON numbers arrive as float64; fractional values are rejected.
func GetOptionalIntArg(args map[string]any, name string, defaultVal int) (int, error) {
	switch val := args[name].(type) {
	case nil:
		return defaultVal, nil
	case int:
		return val, nil
	case float64:
		if val != math.Trunc(val) || math.Abs(val) > math.MaxInt32 {
			return 0, fmt.Errorf("%s argument must be an integer", name)
		}
		return int(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s argument must be an integer", name)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s argument must be an integer", name)
	}
}

// jsonResult renders v as an indented JSON text result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcplib.NewToolResultText(string(data)), nil
}
