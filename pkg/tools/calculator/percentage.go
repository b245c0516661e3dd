package calculator

import (
	"context"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// PercentageTool calculates what share of a whole a part is.
type PercentageTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewPercentageTool creates the "calculate_percentage" tool.
func NewPercentageTool(engine *calc.Engine) core.Tool {
	tool := &PercentageTool{engine: engine}

	tool.handle = mcp.NewTool(
		"calculate_percentage",
		mcp.WithDescription("Calculate percentage (part of whole)."),
		mcp.WithNumber(
			"part",
			mcp.Required(),
			mcp.Description("The part value."),
		),
		mcp.WithNumber(
			"whole",
			mcp.Required(),
			mcp.Description("The whole/total value."),
		),
		mcp.WithBoolean(
			"as_percentage",
			mcp.DefaultBool(true),
			mcp.Description("Return result as percentage (default: true)."),
		),
	)
	return tool
}

// Handle returns the tool's definition.
func (tool *PercentageTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool.
func (tool *PercentageTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	part, err := GetFloat64Arg(request, "part")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	whole, err := GetFloat64Arg(request, "whole")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asPercentage, err := GetBoolArg(request, "as_percentage", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.Percentage(calc.PercentageRequest{
		Part:         part,
		Whole:        whole,
		AsPercentage: asPercentage,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}
