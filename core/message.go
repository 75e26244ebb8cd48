package core

import (
	"strings"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript message.
type Role string

const (
	// RoleSystem marks instructions injected by the host application.
	RoleSystem Role = "system"
	// RoleUser marks input supplied by the end user.
	RoleUser Role = "user"
	// RoleAssistant marks completions returned by the model.
	RoleAssistant Role = "assistant"
	// RoleTool marks the output of a resolved tool call.
	RoleTool Role = "tool"
)

// ToolCall is a tool invocation request emitted by the model inside an
// assistant message. Arguments is the raw JSON payload; it stays unparsed
// at this layer so individual tools own their own decoding.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
}

// Message is one entry of a transcript. After insertion a message is never
// mutated; transcripts only grow.
//
// Field presence follows the conversation wire contract:
//   - Content may be empty on assistant messages that only carry tool calls
//   - ToolCalls is set only on role=assistant
//   - ToolCallID is set only on role=tool and must reference a ToolCall ID
//     emitted by a prior assistant message
type Message struct {
	ID         string     `json:"id"`
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// NewMessage constructs a text message with a fresh identifier.
func NewMessage(role Role, content string) Message {
	return Message{ID: NewID(), Role: role, Content: content}
}

// NewToolResultMessage constructs a role=tool message answering the tool
// call with the given id.
func NewToolResultMessage(toolCallID, output string) Message {
	return Message{ID: NewID(), Role: RoleTool, Content: output, ToolCallID: toolCallID}
}

// HasToolCalls reports whether the message carries tool invocation requests.
func (m Message) HasToolCalls() bool { return len(m.ToolCalls) > 0 }

// ContentContainsFold reports whether the message text contains the given
// substring, ignoring case. Used by the heuristic continuation policy.
func (m Message) ContentContainsFold(sub string) bool {
	return strings.Contains(strings.ToLower(m.Content), strings.ToLower(sub))
}

// NewID generates a new unique identifier for messages.
func NewID() string { return uuid.NewString() }
