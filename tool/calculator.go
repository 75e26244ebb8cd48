package tool

import (
	"context"
	"encoding/json"
	"strconv"
)

// Calculator performs simple arithmetic. It is the canonical zero-I/O tool:
// all failure modes (bad payload, unknown operation, division by zero) are
// expected failures and surface as error payloads for the model.
type Calculator struct{}

// NewCalculator constructs the calculator tool.
func NewCalculator() *Calculator { return &Calculator{} }

// Name returns the unique tool name.
func (t *Calculator) Name() string { return "calculator" }

// Description returns the description shown to the model.
func (t *Calculator) Description() string {
	return "Perform simple arithmetic calculations"
}

// Parameters returns the JSON schema for the calculator arguments.
func (t *Calculator) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type":        "string",
				"enum":        []string{"add", "subtract", "multiply", "divide"},
				"description": "The arithmetic operation to perform",
			},
			"a": map[string]any{"type": "number", "description": "The first number"},
			"b": map[string]any{"type": "number", "description": "The second number"},
		},
		"required": []string{"operation", "a", "b"},
	}
}

type calculatorArgs struct {
	Operation string   `json:"operation"`
	A         *float64 `json:"a"`
	B         *float64 `json:"b"`
}

// Execute runs the requested operation and returns the numeric result as
// text.
func (t *Calculator) Execute(_ context.Context, arguments string) (string, error) {
	var args calculatorArgs
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return Errorf("invalid arguments for tool 'calculator': malformed JSON: %v", err), nil
	}
	if args.Operation == "" || args.A == nil || args.B == nil {
		return Errorf("invalid arguments for tool 'calculator': operation, a and b are required"), nil
	}

	a, b := *args.A, *args.B

	var result float64
	switch args.Operation {
	case "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return "Error: Division by zero", nil
		}
		result = a / b
	default:
		return Errorf("Unknown operation %s", args.Operation), nil
	}

	return strconv.FormatFloat(result, 'f', -1, 64), nil
}
