// Package transcript implements the append-only conversation log and the
// single blocking call to the remote completion endpoint.
package transcript

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/tinyagent/core"
	"github.com/hupe1980/tinyagent/logging"
	"github.com/hupe1980/tinyagent/model"
)

// CompletionError is the typed failure returned when the remote completion
// request itself fails. It wraps the provider error unchanged; there is no
// retry at this layer.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion request to %s failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Options configure a Transcript.
type Options struct {
	Logger logging.Logger
}

// Transcript is the ordered, append-only message history owned by exactly
// one agent. Messages are never mutated or removed after insertion; the
// log only grows. It is not safe for concurrent use — the owning agent is
// the single writer by design.
type Transcript struct {
	model    model.Model
	logger   logging.Logger
	messages []core.Message
	// Tool call ids emitted by appended assistant messages. AppendToolResult
	// must reference one of these; anything else is a caller bug.
	callIDs map[string]struct{}
}

// New constructs an empty transcript bound to a completion model.
func New(m model.Model, optFns ...func(o *Options)) *Transcript {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Transcript{
		model:   m,
		logger:  opts.Logger,
		callIDs: make(map[string]struct{}),
	}
}

// AppendSystem appends a system instruction message.
func (t *Transcript) AppendSystem(text string) {
	t.append(core.NewMessage(core.RoleSystem, text))
}

// AppendUser appends a user message.
func (t *Transcript) AppendUser(text string) {
	t.append(core.NewMessage(core.RoleUser, text))
}

// AppendToolResult appends the output of a resolved tool call. The
// toolCallID must match a tool call emitted by a prior assistant message;
// an unknown id is a caller bug and panics rather than corrupting the
// conversation invariants.
func (t *Transcript) AppendToolResult(toolCallID, output string) {
	if _, ok := t.callIDs[toolCallID]; !ok {
		panic(fmt.Sprintf("transcript: tool result references unknown tool call id %q", toolCallID))
	}
	t.append(core.NewToolResultMessage(toolCallID, output))
}

func (t *Transcript) append(msg core.Message) {
	for _, tc := range msg.ToolCalls {
		if tc.ID != "" {
			t.callIDs[tc.ID] = struct{}{}
		}
	}
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the ordered message history.
func (t *Transcript) Messages() []core.Message {
	out := make([]core.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports the number of messages in the transcript.
func (t *Transcript) Len() int { return len(t.messages) }

// Last returns the most recent message, if any.
func (t *Transcript) Last() (core.Message, bool) {
	if len(t.messages) == 0 {
		return core.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// RequestCompletion serializes the entire message history plus the optional
// tool definitions, performs exactly one completion call, appends the
// returned assistant message and returns it. This is the single blocking
// point of the whole system; transport failures propagate as
// *CompletionError without retry.
func (t *Transcript) RequestCompletion(ctx context.Context, tools []model.ToolDefinition) (core.Message, error) {
	info := t.model.Info()
	start := time.Now()

	resp, err := t.model.Complete(ctx, model.Request{
		Messages: t.Messages(),
		Tools:    tools,
	})
	if err != nil {
		t.logger.Error("transcript.completion.failed",
			"provider", info.Provider,
			"model", info.Name,
			"error", err.Error(),
		)
		return core.Message{}, &CompletionError{Provider: info.Provider, Err: err}
	}

	t.logger.Debug("transcript.completion.received",
		"provider", info.Provider,
		"model", info.Name,
		"finish_reason", resp.FinishReason,
		"tool_calls", len(resp.Message.ToolCalls),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	msg := resp.Message
	msg.Role = core.RoleAssistant
	t.append(msg)

	return msg, nil
}
