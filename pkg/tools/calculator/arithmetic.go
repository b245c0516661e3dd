package calculator

import (
	"context"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/mark3labs/mcp-go/mcp"
)

// ArithmeticTool performs basic arithmetic over two operands.
type ArithmeticTool struct {
	engine *calc.Engine
	handle mcp.Tool
}

// NewArithmeticTool creates the "calculate" tool.
func NewArithmeticTool(engine *calc.Engine) core.Tool {
	tool := &ArithmeticTool{engine: engine}

	tool.handle = mcp.NewTool(
		"calculate",
		mcp.WithDescription("Perform basic arithmetic operations (add, subtract, multiply, divide)."),
		mcp.WithString(
			"operation",
			mcp.Required(),
			mcp.Description("One of 'add', 'subtract', 'multiply', 'divide'."),
			mcp.Enum("add", "subtract", "multiply", "divide"),
		),
		mcp.WithNumber(
			"a",
			mcp.Required(),
			mcp.Description("First number."),
		),
		mcp.WithNumber(
			"b",
			mcp.Required(),
			mcp.Description("Second number."),
		),
	)
	return tool
}

// Handle returns the tool's definition.
func (tool *ArithmeticTool) Handle() mcp.Tool {
	return tool.handle
}

// Handler executes the tool.
func (tool *ArithmeticTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation, err := GetStringArg(request, "operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := GetFloat64Arg(request, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := GetFloat64Arg(request, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := tool.engine.Arithmetic(calc.ArithmeticRequest{Operation: operation, A: a, B: b})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return NewJSONResult(result)
}
