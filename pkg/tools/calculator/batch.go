package calculator

import (
	"context"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// BatchTool performs multiple independent calculations in a single request.
type BatchTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewBatchTool creates the "batch_calculate" tool.
func NewBatchTool(engine *calc.Engine) core.Tool {
	tool := &BatchTool{engine: engine}

	tool.handle = mcp.NewTool(
		"batch_calculate",
		mcp.WithDescription("Perform multiple calculations in a single request. Each item carries a 'type' of 'arithmetic', 'yoy', 'mom', 'percentage' or 'proportion' plus that operation's fields."),
		mcp.WithArray(
			"calculations",
			mcp.Required(),
			mcp.Description("List of calculation specifications."),
			mcp.Items(map[string]any{"type": "object"}),
		),
	)
	return tool
}

// Handle returns the tool's definition.
func (tool *BatchTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool. Individual item failures land in their own
// result slot; only a malformed or oversized request fails as a whole.
func (tool *BatchTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calculations, err := GetMapSliceArg(request, "calculations")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.Batch(calc.BatchRequest{Calculations: calculations})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}
