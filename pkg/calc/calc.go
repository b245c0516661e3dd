// Package calc implements the calculation core: pure, stateless functions
// behind the calculator tools. Every function either returns a fully
// populated result or an error value; nothing panics across the boundary.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors. The messages are part of the wire contract and match
// what existing callers already parse, so they stay capitalized.
var (
	ErrDivisionByZero    = errors.New("Division by zero is not allowed")
	ErrUnknownOperation  = errors.New("Unsupported operation")
	ErrZeroPreviousYear  = errors.New("Previous year value cannot be zero")
	ErrZeroPreviousMonth = errors.New("Previous month value cannot be zero")
	ErrZeroWhole         = errors.New("Whole value cannot be zero")
	ErrEmptyValues       = errors.New("Values list cannot be empty")
	ErrZeroSum           = errors.New("Sum of values cannot be zero")
	ErrUnknownType       = errors.New("Unknown calculation type")
	ErrMissingField      = errors.New("Missing required field")
	ErrTooManyValues     = errors.New("Too many values")
	ErrBatchTooLarge     = errors.New("Too many calculations")
)

// Limits bound the only unbounded, caller-controlled inputs.
type Limits struct {
	MaxValues int
	MaxBatch  int
}

// DefaultLimits are applied wherever a limit is unset or nonsensical.
var DefaultLimits = Limits{MaxValues: 10000, MaxBatch: 1000}

// Engine evaluates calculation requests. It holds no mutable state; the
// limits are read-only after construction, so an Engine is safe for
// concurrent use.
type Engine struct {
	limits Limits
}

// NewEngine creates an Engine with the given limits, falling back to
// DefaultLimits for any non-positive value.
func NewEngine(limits Limits) *Engine {
	if limits.MaxValues <= 0 {
		limits.MaxValues = DefaultLimits.MaxValues
	}
	if limits.MaxBatch <= 0 {
		limits.MaxBatch = DefaultLimits.MaxBatch
	}
	return &Engine{limits: limits}
}

// ArithmeticRequest selects one of the four basic operations over two operands.
type ArithmeticRequest struct {
	Operation string  `json:"operation" mapstructure:"operation"`
	A         float64 `json:"a" mapstructure:"a"`
	B         float64 `json:"b" mapstructure:"b"`
}

// ArithmeticResult echoes the operands alongside the computed value.
type ArithmeticResult struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// YoYRequest asks for year-over-year growth. AsPercentage defaults to true
// at every entry point; the zero value is only meaningful when the caller
// explicitly asked for a raw ratio.
type YoYRequest struct {
	CurrentValue      float64 `json:"current_value" mapstructure:"current_value"`
	PreviousYearValue float64 `json:"previous_year_value" mapstructure:"previous_year_value"`
	AsPercentage      bool    `json:"as_percentage" mapstructure:"as_percentage"`
}

// YoYResult reports growth against the previous year.
type YoYResult struct {
	CurrentValue      float64 `json:"current_value"`
	PreviousYearValue float64 `json:"previous_year_value"`
	AbsoluteChange    float64 `json:"absolute_change"`
	YoYGrowth         float64 `json:"yoy_growth"`
	Formatted         string  `json:"formatted"`
	Direction         string  `json:"direction"`
}

// MoMRequest asks for month-over-month growth.
type MoMRequest struct {
	CurrentValue       float64 `json:"current_value" mapstructure:"current_value"`
	PreviousMonthValue float64 `json:"previous_month_value" mapstructure:"previous_month_value"`
	AsPercentage       bool    `json:"as_percentage" mapstructure:"as_percentage"`
}

// MoMResult reports growth against the previous month.
type MoMResult struct {
	CurrentValue       float64 `json:"current_value"`
	PreviousMonthValue float64 `json:"previous_month_value"`
	AbsoluteChange     float64 `json:"absolute_change"`
	MoMGrowth          float64 `json:"mom_growth"`
	Formatted          string  `json:"formatted"`
	Direction          string  `json:"direction"`
}

// PercentageRequest asks what share of whole the part is.
type PercentageRequest struct {
	Part         float64 `json:"part" mapstructure:"part"`
	Whole        float64 `json:"whole" mapstructure:"whole"`
	AsPercentage bool    `json:"as_percentage" mapstructure:"as_percentage"`
}

// PercentageResult reports the share plus the raw signed ratio.
type PercentageResult struct {
	Part       float64 `json:"part"`
	Whole      float64 `json:"whole"`
	Percentage float64 `json:"percentage"`
	Formatted  string  `json:"formatted"`
	Ratio      float64 `json:"ratio"`
}

// ProportionRequest asks for each value's share of the sum of all values.
type ProportionRequest struct {
	Values    []float64 `json:"values" mapstructure:"values"`
	Normalize bool      `json:"normalize" mapstructure:"normalize"`
}

// ProportionResult holds per-value shares, positionally aligned with the input.
type ProportionResult struct {
	Values      []float64 `json:"values"`
	Total       float64   `json:"total"`
	Proportions []float64 `json:"proportions"`
	Percentages []float64 `json:"percentages"`
	Formatted   []string  `json:"formatted"`
}

// Arithmetic performs one of add, subtract, multiply or divide. The
// operation name is matched case-insensitively.
func (e *Engine) Arithmetic(req ArithmeticRequest) (*ArithmeticResult, error) {
	op := strings.ToLower(req.Operation)

	var result float64

	switch op {
	case "add":
		result = req.A + req.B
	case "subtract":
		result = req.A - req.B
	case "multiply":
		result = req.A * req.B
	case "divide":
		if req.B == 0 {
			return nil, ErrDivisionByZero
		}
		result = req.A / req.B
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, req.Operation)
	}

	return &ArithmeticResult{
		Operation: op,
		A:         req.A,
		B:         req.B,
		Result:    result,
		Formatted: fmt.Sprintf("%s %s %s = %s",
			formatNumber(req.A), operatorSymbol(op), formatNumber(req.B), formatNumber(result)),
	}, nil
}

// YoY computes year-over-year growth: (current - previous) / |previous|.
// Percent-unit output is rounded to two decimals; raw ratios are unrounded.
func (e *Engine) YoY(req YoYRequest) (*YoYResult, error) {
	if req.PreviousYearValue == 0 {
		return nil, ErrZeroPreviousYear
	}

	change, rate := growthRate(req.CurrentValue, req.PreviousYearValue, req.AsPercentage)

	res := &YoYResult{
		CurrentValue:      req.CurrentValue,
		PreviousYearValue: req.PreviousYearValue,
		AbsoluteChange:    change,
		YoYGrowth:         rate,
		Formatted:         formatGrowth("YoY", rate, req.AsPercentage),
		Direction:         direction(change),
	}
	if req.AsPercentage {
		res.YoYGrowth = roundTo(rate, 2)
	}

	return res, nil
}

// MoM computes month-over-month growth with the same algorithm and edge-case
// policy as YoY, under its own field names.
func (e *Engine) MoM(req MoMRequest) (*MoMResult, error) {
	if req.PreviousMonthValue == 0 {
		return nil, ErrZeroPreviousMonth
	}

	change, rate := growthRate(req.CurrentValue, req.PreviousMonthValue, req.AsPercentage)

	res := &MoMResult{
		CurrentValue:       req.CurrentValue,
		PreviousMonthValue: req.PreviousMonthValue,
		AbsoluteChange:     change,
		MoMGrowth:          rate,
		Formatted:          formatGrowth("MoM", rate, req.AsPercentage),
		Direction:          direction(change),
	}
	if req.AsPercentage {
		res.MoMGrowth = roundTo(rate, 2)
	}

	return res, nil
}

// Percentage computes what share of whole the part is.
func (e *Engine) Percentage(req PercentageRequest) (*PercentageResult, error) {
	if req.Whole == 0 {
		return nil, ErrZeroWhole
	}

	pct := (req.Part / math.Abs(req.Whole)) * 100
	if !req.AsPercentage {
		pct = pct / 100
	}

	res := &PercentageResult{
		Part:       req.Part,
		Whole:      req.Whole,
		Percentage: pct,
		Ratio:      req.Part / req.Whole,
	}
	if req.AsPercentage {
		res.Percentage = roundTo(pct, 2)
		res.Formatted = fmt.Sprintf("%.2f%%", pct)
	} else {
		res.Formatted = fmt.Sprintf("%.2f", pct)
	}

	return res, nil
}

// Proportion computes each value's share of the sum of all values. With
// Normalize set the shares are rescaled by their own sum, which is an
// idempotent operation. A zero sum is an error, consistent with the other
// divide-by-zero guards.
func (e *Engine) Proportion(req ProportionRequest) (*ProportionResult, error) {
	if len(req.Values) == 0 {
		return nil, ErrEmptyValues
	}
	if len(req.Values) > e.limits.MaxValues {
		return nil, fmt.Errorf("%w: %d values exceeds the limit of %d",
			ErrTooManyValues, len(req.Values), e.limits.MaxValues)
	}

	var total float64
	for _, v := range req.Values {
		total += v
	}
	if total == 0 {
		return nil, ErrZeroSum
	}

	proportions := make([]float64, len(req.Values))
	for i, v := range req.Values {
		proportions[i] = v / total
	}

	if req.Normalize {
		var sum float64
		for _, p := range proportions {
			sum += p
		}
		for i := range proportions {
			proportions[i] = proportions[i] / sum
		}
	}

	res := &ProportionResult{
		Values:      req.Values,
		Total:       total,
		Proportions: make([]float64, len(proportions)),
		Percentages: make([]float64, len(proportions)),
		Formatted:   make([]string, len(proportions)),
	}
	for i, p := range proportions {
		pct := p * 100
		res.Proportions[i] = roundTo(p, 4)
		res.Percentages[i] = roundTo(pct, 2)
		res.Formatted[i] = fmt.Sprintf("Value %d: %s (%.2f%%)", i+1, formatNumber(req.Values[i]), pct)
	}

	return res, nil
}

// growthRate returns the absolute change and the growth rate over the
// previous value. The denominator uses |previous| so the sign of the rate
// follows the direction of the change even for negative baselines.
func growthRate(current, previous float64, asPercentage bool) (change, rate float64) {
	change = current - previous
	rate = (change / math.Abs(previous)) * 100
	if !asPercentage {
		rate = rate / 100
	}
	return change, rate
}

func formatGrowth(label string, rate float64, asPercentage bool) string {
	if asPercentage {
		return fmt.Sprintf("%s: %.2f%%", label, rate)
	}
	return fmt.Sprintf("%s: %.2f", label, rate)
}

func direction(change float64) string {
	switch {
	case change > 0:
		return "increase"
	case change < 0:
		return "decrease"
	default:
		return "no change"
	}
}

func operatorSymbol(operation string) string {
	switch operation {
	case "add":
		return "+"
	case "subtract":
		return "-"
	case "multiply":
		return "×"
	case "divide":
		return "÷"
	}
	return operation
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

// formatNumber renders a float without trailing zeros, so 10 prints as "10"
// rather than "10.000000".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
