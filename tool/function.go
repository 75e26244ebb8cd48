package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/tinyagent/internal/util"
)

// FunctionTool is a generic adapter that exposes a plain Go function as a
// Tool.
//
// Responsibilities:
//   - Holds a lightweight JSON-Schema-like parameter specification
//   - Decodes the raw argument payload and validates it against that schema
//     before execution; decode and validation failures become "Error: ..."
//     payloads so the model can correct itself
//   - Normalizes unexpected failures so callers receive *ToolError with
//     consistent codes (EXECUTION_ERROR for plain errors; custom codes are
//     preserved when the function returns *ToolError directly)
//
// Concurrency: a FunctionTool has no internal mutable state after
// construction and is safe for concurrent use by multiple goroutines.
type FunctionTool struct {
	// Tool identifier (snake_case recommended)
	name string
	// Human-readable description shown to models
	description string
	// JSON schema describing accepted arguments
	parameters map[string]any
	// User supplied implementation
	fn func(ctx context.Context, args map[string]any) (string, error)
}

// NewFunctionTool constructs a FunctionTool from explicit schema and
// function.
//
// Example:
//
//	echoTool := NewFunctionTool(
//	  "echo",
//	  "Repeat the provided text",
//	  map[string]any{
//	    "type": "object",
//	    "properties": map[string]any{
//	      "text": map[string]any{"type": "string"},
//	    },
//	    "required": []string{"text"},
//	  },
//	  func(_ context.Context, args map[string]any) (string, error) {
//	    return args["text"].(string), nil
//	  },
//	)
func NewFunctionTool(
	name, description string,
	parameters map[string]any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// NewFunctionToolFromStruct derives the parameter schema from a struct using
// reflection. It is a convenience for simple argument containers and
// produces a schema equivalent to util.CreateSchema(structType).
func NewFunctionToolFromStruct(
	name, description string,
	structType any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return NewFunctionTool(name, description, util.CreateSchema(structType), fn)
}

// Name returns the unique tool name used in function call declarations and
// routing.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the short natural language description exposed to
// models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the (minimal) JSON schema describing expected
// arguments.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Execute decodes and validates the raw argument payload, then invokes the
// underlying function. Decode and validation failures are expected model
// mistakes and come back as "Error: ..." payloads; function errors are
// wrapped (or passed through) as *ToolError for uniform downstream handling.
func (t *FunctionTool) Execute(ctx context.Context, arguments string) (string, error) {
	args, err := DecodeArguments(arguments)
	if err != nil {
		return Errorf("invalid arguments for tool '%s': %v", t.name, err), nil
	}

	if err := util.ValidateParameters(args, t.parameters); err != nil {
		return Errorf("invalid arguments for tool '%s': %v", t.name, err), nil
	}

	result, err := t.fn(ctx, args)
	if err != nil {
		if toolErr, ok := err.(*ToolError); ok {
			return "", toolErr
		}
		return "", &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    "EXECUTION_ERROR",
		}
	}

	return result, nil
}

// DecodeArguments unmarshals a raw JSON argument payload into a map. An
// empty payload decodes to an empty map.
func DecodeArguments(arguments string) (map[string]any, error) {
	if arguments == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
