package calculator

import (
	"context"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProportionTool calculates each value's share of the sum of a value set.
type ProportionTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewProportionTool creates the "calculate_proportion" tool.
func NewProportionTool(engine *calc.Engine) core.Tool {
	tool := &ProportionTool{engine: engine}

	tool.handle = mcp.NewTool(
		"calculate_proportion",
		mcp.WithDescription("Calculate proportions for a list of values."),
		mcp.WithArray(
			"values",
			mcp.Required(),
			mcp.Description("List of numeric values."),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithBoolean(
			"normalize",
			mcp.DefaultBool(false),
			mcp.Description("Whether to normalize proportions to sum to 1 (default: false)."),
		),
	)
	return tool
}

// Handle returns the tool's definition.
func (tool *ProportionTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool.
func (tool *ProportionTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := GetFloatSliceArg(request, "values")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	normalize, err := GetBoolArg(request, "normalize", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.Proportion(calc.ProportionRequest{
		Values:    values,
		Normalize: normalize,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}
