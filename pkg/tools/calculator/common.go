// Package calculator exposes the calculation core as MCP tools.
package calculator

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Helper to extract a string argument.
func GetStringArg(req mcp.CallToolRequest, key string) (string, error) {
	var (
		val any
		str string
		ok  bool
	)

	if val, ok = req.GetArguments()[key]; !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}

	str, ok = val.(string)

	if !ok {
		return "", fmt.Errorf("argument %s is not a string", key)
	}

	return str, nil
}

// Helper to extract a float64 argument.
func GetFloat64Arg(req mcp.CallToolRequest, key string) (float64, error) {
	var (
		val any
		f   float64
		ok  bool
	)

	if val, ok = req.GetArguments()[key]; !ok {
		return 0, fmt.Errorf("missing argument: %s", key)
	}

	f, ok = toFloat64(val)

	if !ok {
		return 0, fmt.Errorf("argument %s is not a number", key)
	}

	return f, nil
}

// Helper to extract an optional boolean argument with a default.
func GetBoolArg(req mcp.CallToolRequest, key string, def bool) (bool, error) {
	val, ok := req.GetArguments()[key]
	if !ok {
		return def, nil
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("argument %s is not a boolean", key)
	}

	return b, nil
}

// Helper to extract an array-of-numbers argument.
func GetFloatSliceArg(req mcp.CallToolRequest, key string) ([]float64, error) {
	val, ok := req.GetArguments()[key]
	if !ok {
		return nil, fmt.Errorf("missing argument: %s", key)
	}

	raw, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %s is not an array", key)
	}

	out := make([]float64, len(raw))
	for i, elem := range raw {
		f, ok := toFloat64(elem)
		if !ok {
			return nil, fmt.Errorf("argument %s element %d is not a number", key, i)
		}
		out[i] = f
	}

	return out, nil
}

// Helper to extract an array-of-objects argument.
func GetMapSliceArg(req mcp.CallToolRequest, key string) ([]map[string]any, error) {
	val, ok := req.GetArguments()[key]
	if !ok {
		return nil, fmt.Errorf("missing argument: %s", key)
	}

	raw, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %s is not an array", key)
	}

	out := make([]map[string]any, len(raw))
	for i, elem := range raw {
		m, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("argument %s element %d is not an object", key, i)
		}
		out[i] = m
	}

	return out, nil
}

// JSON numbers always decode as float64, but arguments built in-process may
// carry native integer types.
func toFloat64(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// NewJSONResult marshals a calculation result into a text result.
func NewJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
