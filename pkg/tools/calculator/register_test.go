package calculator

import (
	"testing"

	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	. "github.com/smartystreets/goconvey/convey"
)

// TestRegisterCalculatorTools tests the RegisterCalculatorTools function
func TestRegisterCalculatorTools(t *testing.T) {
	Convey("Given the RegisterCalculatorTools function", t, func() {
		engine := calc.NewEngine(calc.DefaultLimits)
		tools := RegisterCalculatorTools(engine)

		Convey("It should return all six calculator tools", func() {
			So(tools, ShouldNotBeNil)
			So(len(tools), ShouldEqual, 6)
		})

		Convey("It should expose the published tool names", func() {
			names := make(map[string]bool)
			for _, tool := range tools {
				names[tool.Handle().Name] = true
			}

			So(names, ShouldContainKey, "calculate")
			So(names, ShouldContainKey, "calculate_yoy")
			So(names, ShouldContainKey, "calculate_mom")
			So(names, ShouldContainKey, "calculate_percentage")
			So(names, ShouldContainKey, "calculate_proportion")
			So(names, ShouldContainKey, "batch_calculate")
		})

		Convey("It should include each tool type exactly once", func() {
			var arithmeticCount int
			var yoyCount int
			var momCount int
			var percentageCount int
			var proportionCount int
			var batchCount int

			for _, tool := range tools {
				switch tool.(type) {
				case *ArithmeticTool:
					arithmeticCount++
				case *YoYTool:
					yoyCount++
				case *MoMTool:
					momCount++
				case *PercentageTool:
					percentageCount++
				case *ProportionTool:
					proportionCount++
				case *BatchTool:
					batchCount++
				}
			}

			So(arithmeticCount, ShouldEqual, 1)
			So(yoyCount, ShouldEqual, 1)
			So(momCount, ShouldEqual, 1)
			So(percentageCount, ShouldEqual, 1)
			So(proportionCount, ShouldEqual, 1)
			So(batchCount, ShouldEqual, 1)
		})

		Convey("All registered tools should implement the core.Tool interface", func() {
			for _, tool := range tools {
				So(tool, ShouldImplement, (*core.Tool)(nil))
			}
		})
	})
}
