package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/tinyagent/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
// The {type:"function", function:{...}} shape is the wire contract of the
// completion endpoints and must be preserved exactly.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the
// model. Parameters is a JSON Schema object (draft agnostic, minimal subset
// expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// NewToolDefinition builds a wire-shaped definition for a named function.
func NewToolDefinition(name, description string, parameters map[string]any) ToolDefinition {
	return ToolDefinition{
		Type: "function",
		Function: FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// Request captures the normalized completion input: the full ordered
// transcript plus the optional tool definitions for this turn.
type Request struct {
	Messages []core.Message   `json:"messages"`
	Tools    []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the assistant message returned by a provider together with
// provider metadata.
type Response struct {
	Message      core.Message `json:"message"`
	FinishReason string       `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required to drive one completion round
// trip. Complete performs exactly one remote call; retries, if any, belong
// to the caller.
type Model interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses are scripted in order; each Complete call pops the next one.
// Requests are recorded so tests can assert on the transcript the model saw.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses []Response
	requests  []Request
	err       error
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      "mock",
			SupportsTools: true,
		},
	}
}

// EnqueueText scripts a plain assistant answer.
func (m *MockModel) EnqueueText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, Response{
		Message:      core.NewMessage(core.RoleAssistant, text),
		FinishReason: "stop",
	})
}

// EnqueueToolCalls scripts an assistant turn that requests the given tool
// calls in order.
func (m *MockModel) EnqueueToolCalls(calls ...core.ToolCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := core.NewMessage(core.RoleAssistant, "")
	msg.ToolCalls = calls
	m.responses = append(m.responses, Response{Message: msg, FinishReason: "tool_calls"})
}

// FailWith makes every subsequent Complete call return err, simulating a
// transport failure.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Requests returns the requests observed so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Model by replaying the scripted responses.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, fmt.Errorf("mock model: no scripted response left")
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	return &resp, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
