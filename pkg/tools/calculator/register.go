package calculator

import (
	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
)

// RegisterCalculatorTools returns all calculator tools wired to the given
// engine, ready to be registered with an MCP server.
func RegisterCalculatorTools(engine *calc.Engine) []core.Tool {
	return []core.Tool{
		NewArithmeticTool(engine),
		NewYoYTool(engine),
		NewMoMTool(engine),
		NewPercentageTool(engine),
		NewProportionTool(engine),
		NewBatchTool(engine),
	}
}
