package calculator

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// newCallRequest builds an in-process tool call the way the MCP server
// would after decoding a JSON request body.
func newCallRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, not text", result.Content[0])
	}

	return text.Text
}

// resultJSON unmarshals the text payload of a tool result.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("tool result is not valid JSON: %v", err)
	}

	return out
}
