package calc

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// BatchRequest bundles independent calculation descriptors. Each descriptor
// carries a "type" discriminator plus the fields of the selected operation.
type BatchRequest struct {
	Calculations []map[string]any `json:"calculations" mapstructure:"calculations"`
}

// ErrorResult is the structured error returned in place of a result. It is
// the only error shape that crosses the tool boundary.
type ErrorResult struct {
	Error string `json:"error"`
}

// BatchItemOutcome pairs one input descriptor with its result. Result holds
// either an operation result struct or an ErrorResult.
type BatchItemOutcome struct {
	Calculation map[string]any `json:"calculation"`
	Result      any            `json:"result"`
}

// BatchResult reports every outcome, positionally aligned with the input.
type BatchResult struct {
	TotalCalculations int                `json:"total_calculations"`
	Successful        int                `json:"successful"`
	Results           []BatchItemOutcome `json:"results"`
}

// Batch dispatches each descriptor to the matching operation and collects
// per-slot outcomes. A failing item records an ErrorResult in its slot and
// never aborts its siblings, so the output length always equals the input
// length. Only an oversized batch is rejected as a whole.
func (e *Engine) Batch(req BatchRequest) (*BatchResult, error) {
	if len(req.Calculations) > e.limits.MaxBatch {
		return nil, fmt.Errorf("%w: %d calculations exceeds the limit of %d",
			ErrBatchTooLarge, len(req.Calculations), e.limits.MaxBatch)
	}

	out := &BatchResult{
		TotalCalculations: len(req.Calculations),
		Results:           make([]BatchItemOutcome, 0, len(req.Calculations)),
	}

	for _, desc := range req.Calculations {
		outcome := BatchItemOutcome{Calculation: desc}

		result, err := e.dispatch(desc)
		if err != nil {
			outcome.Result = ErrorResult{Error: err.Error()}
		} else {
			outcome.Result = result
			out.Successful++
		}

		out.Results = append(out.Results, outcome)
	}

	return out, nil
}

// dispatch routes one descriptor by its "type" field. Optional fields keep
// their documented defaults when absent because decoding only overwrites
// fields that are present in the descriptor.
func (e *Engine) dispatch(desc map[string]any) (any, error) {
	calcType, _ := desc["type"].(string)

	switch calcType {
	case "arithmetic":
		var req ArithmeticRequest
		if err := decodeDescriptor(desc, &req, "operation", "a", "b"); err != nil {
			return nil, err
		}
		return e.Arithmetic(req)

	case "yoy":
		req := YoYRequest{AsPercentage: true}
		if err := decodeDescriptor(desc, &req, "current_value", "previous_year_value"); err != nil {
			return nil, err
		}
		return e.YoY(req)

	case "mom":
		req := MoMRequest{AsPercentage: true}
		if err := decodeDescriptor(desc, &req, "current_value", "previous_month_value"); err != nil {
			return nil, err
		}
		return e.MoM(req)

	case "percentage":
		req := PercentageRequest{AsPercentage: true}
		if err := decodeDescriptor(desc, &req, "part", "whole"); err != nil {
			return nil, err
		}
		return e.Percentage(req)

	case "proportion":
		var req ProportionRequest
		if err := decodeDescriptor(desc, &req, "values"); err != nil {
			return nil, err
		}
		return e.Proportion(req)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownType, desc["type"])
}

// decodeDescriptor checks the required keys are present, then decodes the
// raw descriptor into the typed request. Wrongly typed fields surface as a
// decode error for that slot.
func decodeDescriptor(desc map[string]any, target any, required ...string) error {
	for _, key := range required {
		if _, ok := desc[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: target})
	if err != nil {
		return err
	}
	if err := decoder.Decode(desc); err != nil {
		return fmt.Errorf("invalid calculation fields: %v", err)
	}

	return nil
}
