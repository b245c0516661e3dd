package calculator

import (
	"context"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// YoYTool calculates year-over-year growth.
type YoYTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewYoYTool creates the "calculate_yoy" tool.
func NewYoYTool(engine *calc.Engine) core.Tool {
	tool := &YoYTool{engine: engine}

	tool.handle = mcp.NewTool(
		"calculate_yoy",
		mcp.WithDescription("Calculate Year-over-Year (YoY) growth."),
		mcp.WithNumber(
			"current_value",
			mcp.Required(),
			mcp.Description("Current period value."),
		),
		mcp.WithNumber(
			"previous_year_value",
			mcp.Required(),
			mcp.Description("Previous year value."),
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
func (tool *YoYTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool.
func (tool *YoYTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := GetFloat64Arg(request, "current_value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	previous, err := GetFloat64Arg(request, "previous_year_value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asPercentage, err := GetBoolArg(request, "as_percentage", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.YoY(calc.YoYRequest{
		CurrentValue:      current,
		PreviousYearValue: previous,
		AsPercentage:      asPercentage,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}

// MoMTool calculates month-over-month growth.
type MoMTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewMoMTool creates the "calculate_mom" tool.
func NewMoMTool(engine *calc.Engine) core.Tool {
	tool := &MoMTool{engine: engine}

	tool.handle = mcp.NewTool(
		"calculate_mom",
		mcp.WithDescription("Calculate Month-over-Month (MoM) growth."),
		mcp.WithNumber(
			"current_value",
			mcp.Required(),
			mcp.Description("Current month value."),
		),
		mcp.WithNumber(
			"previous_month_value",
			mcp.Required(),
			mcp.Description("Previous month value."),
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
func (tool *MoMTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool.
func (tool *MoMTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current, err := GetFloat64Arg(request, "current_value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	previous, err := GetFloat64Arg(request, "previous_month_value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asPercentage, err := GetBoolArg(request, "as_percentage", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.MoM(calc.MoMRequest{
		CurrentValue:       current,
		PreviousMonthValue: previous,
		AsPercentage:       asPercentage,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}
