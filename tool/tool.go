// Package tool implements the function / tool calling subsystem: the
// contract an invocable capability exposes to the agent loop, the registry
// that resolves tool calls by name, and the built-in Calculator,
// WebsiteFetcher and Search tools.
package tool

import (
	"context"
	"fmt"

	"github.com/hupe1980/tinyagent/internal/util"
)

// Tool defines the interface for capabilities the model can invoke.
//
// Execute receives the raw JSON argument payload exactly as the model
// emitted it; each tool owns its own decoding. Expected failure modes
// (malformed JSON, domain errors such as division by zero, network
// failures) must be returned as a textual "Error: ..." payload with a nil
// error, because the payload is delivered back into the conversation as
// tool output for the model to read and react to. The error return is
// reserved for unexpected faults; the agent loop converts those into an
// error payload as well, so a malfunctioning tool never aborts the turn.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define proper JSON schema for parameters
//   - Bound any network I/O with a timeout
//   - Never mutate the transcript or registry
type Tool interface {
	// Name returns the unique identifier for this tool.
	// Names should follow function naming conventions (snake_case recommended).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is provided to the LLM to help it decide when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Execute runs the tool with the raw JSON argument payload.
	Execute(ctx context.Context, arguments string) (string, error)
}

// ValidationError represents parameter validation errors with detailed
// information.
type ValidationError = util.ValidationError

// ToolError represents unexpected errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}

// Errorf formats an expected failure as the textual payload the model reads.
func Errorf(format string, args ...any) string {
	return "Error: " + fmt.Sprintf(format, args...)
}
