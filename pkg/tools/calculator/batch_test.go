package calculator

import (
	"context"
	"testing"

	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBatchToolHandler(t *testing.T) {
	Convey("Given the batch_calculate tool", t, func() {
		engine := calc.NewEngine(calc.DefaultLimits)
		tool := NewBatchTool(engine)

		Convey("When called with a valid item and an invalid item", func() {
			request := newCallRequest("batch_calculate", map[string]any{
				"calculations": []any{
					map[string]any{"type": "arithmetic", "operation": "add", "a": 10.0, "b": 5.0},
					map[string]any{"type": "nonsense"},
				},
			})

			result, err := tool.Handler(context.Background(), request)

			Convey("Then both slots should survive, positionally aligned", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)

				payload := resultJSON(t, result)
				So(payload["total_calculations"], ShouldEqual, 2.0)
				So(payload["successful"], ShouldEqual, 1.0)

				results, ok := payload["results"].([]any)
				So(ok, ShouldBeTrue)
				So(len(results), ShouldEqual, 2)

				first, ok := results[0].(map[string]any)
				So(ok, ShouldBeTrue)
				firstResult, ok := first["result"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(firstResult["result"], ShouldEqual, 15.0)
				So(firstResult, ShouldNotContainKey, "error")

				second, ok := results[1].(map[string]any)
				So(ok, ShouldBeTrue)
				secondResult, ok := second["result"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(secondResult["error"], ShouldContainSubstring, "Unknown calculation type: nonsense")
			})
		})

		Convey("When every item succeeds", func() {
			request := newCallRequest("batch_calculate", map[string]any{
				"calculations": []any{
					map[string]any{"type": "percentage", "part": 25.0, "whole": 200.0},
					map[string]any{"type": "proportion", "values": []any{1.0, 3.0}},
				},
			})

			result, err := tool.Handler(context.Background(), request)

			Convey("Then the successful count should match the total", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeFalse)

				payload := resultJSON(t, result)
				So(payload["total_calculations"], ShouldEqual, 2.0)
				So(payload["successful"], ShouldEqual, 2.0)
			})
		})

		Convey("When each item echoes its descriptor", func() {
			request := newCallRequest("batch_calculate", map[string]any{
				"calculations": []any{
					map[string]any{"type": "mom", "current_value": 110.0, "previous_month_value": 100.0},
				},
			})

			result, err := tool.Handler(context.Background(), request)

			Convey("Then the calculation field should mirror the input", func() {
				So(err, ShouldBeNil)

				payload := resultJSON(t, result)
				results := payload["results"].([]any)
				slot := results[0].(map[string]any)
				echo, ok := slot["calculation"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(echo["type"], ShouldEqual, "mom")
				So(echo["current_value"], ShouldEqual, 110.0)
			})
		})

		Convey("When the calculations argument is missing", func() {
			request := newCallRequest("batch_calculate", map[string]any{})

			result, err := tool.Handler(context.Background(), request)

			Convey("Then it should return an error result", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(resultText(t, result), ShouldContainSubstring, "missing argument: calculations")
			})
		})

		Convey("When an item is not an object", func() {
			request := newCallRequest("batch_calculate", map[string]any{
				"calculations": []any{"not an object"},
			})

			result, err := tool.Handler(context.Background(), request)

			Convey("Then it should reject the request", func() {
				So(err, ShouldBeNil)
				So(result.IsError, ShouldBeTrue)
				So(resultText(t, result), ShouldContainSubstring, "element 0 is not an object")
			})
		})
	})
}
