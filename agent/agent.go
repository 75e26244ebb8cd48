package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/tinyagent/core"
	"github.com/hupe1980/tinyagent/logging"
	"github.com/hupe1980/tinyagent/model"
	"github.com/hupe1980/tinyagent/tool"
	"github.com/hupe1980/tinyagent/transcript"
)

// ErrToolRoundsExceeded is returned when a single turn requires more tool
// resolution rounds than the configured maximum. It gives the infinite
// tool-call loop a well-defined failure instead of unbounded recursion.
var ErrToolRoundsExceeded = errors.New("too many tool resolution rounds")

// ContinuePrompt is the literal follow-up message Run sends while the
// continuation policy asks for another turn.
const ContinuePrompt = "Continue"

// Options configure an Agent instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// SystemMessage overrides the default objective-derived system message.
	SystemMessage string
	// MaxToolRounds bounds the completion/tool-resolution alternation within
	// one SendMessage call. Zero means unlimited.
	MaxToolRounds int
	// Logger receives structured progress events.
	Logger logging.Logger
	// Continuation decides whether Run keeps prompting after a turn.
	Continuation ContinuationPolicy
}

// Agent owns one transcript and one tool registry and drives the
// resolve-tool-calls state machine: ask the model, run the tools it
// requested, feed the results back, repeat until the model produces a plain
// answer.
//
// An Agent is a single logical thread of control. It holds no locks because
// it exclusively owns its transcript and registry; run multiple agents in
// separate goroutines if concurrency is needed.
type Agent struct {
	objective     string
	transcript    *transcript.Transcript
	registry      *tool.Registry
	maxToolRounds int
	logger        logging.Logger
	continuation  ContinuationPolicy
}

// New creates an agent with an objective and a completion model.
//
// Defaults:
//   - System message derived from the objective
//   - 10 tool resolution rounds per turn
//   - Substring "continue" continuation policy for Run
//   - No logging
func New(objective string, m model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		SystemMessage: fmt.Sprintf(
			"You are a helpful AI assistant with the objective: %s. Think step by step to achieve the objective.",
			objective,
		),
		MaxToolRounds: 10,
		Logger:        logging.NoOpLogger{},
		Continuation:  NewSubstringContinuation(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	t := transcript.New(m, func(o *transcript.Options) {
		o.Logger = opts.Logger
	})
	t.AppendSystem(opts.SystemMessage)

	return &Agent{
		objective:     objective,
		transcript:    t,
		registry:      tool.NewRegistry(),
		maxToolRounds: opts.MaxToolRounds,
		logger:        opts.Logger,
		continuation:  opts.Continuation,
	}
}

// Objective returns the objective the agent was constructed with.
func (a *Agent) Objective() string { return a.objective }

// RegisterTool adds a tool to the agent's capability set. Duplicate names
// are rejected.
func (a *Agent) RegisterTool(t tool.Tool) error {
	return a.registry.Register(t)
}

// RegisterTools adds multiple tools, stopping at the first failure.
func (a *Agent) RegisterTools(tools ...tool.Tool) error {
	for _, t := range tools {
		if err := a.registry.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// HasTool checks if a tool is registered with the agent.
func (a *Agent) HasTool(name string) bool {
	_, ok := a.registry.Lookup(name)
	return ok
}

// ListTools returns the registered tool names in registration order.
func (a *Agent) ListTools() []string { return a.registry.Names() }

// Messages returns a copy of the full transcript so far.
func (a *Agent) Messages() []core.Message { return a.transcript.Messages() }

// SendMessage appends a user message and drives the turn to completion:
// completions that carry tool calls are resolved sequentially in emission
// order and followed by another completion, until the model answers in
// plain text or the tool round limit is hit. The call blocks; no partial
// state is observable from outside.
func (a *Agent) SendMessage(ctx context.Context, text string) (core.Message, error) {
	a.transcript.AppendUser(text)

	defs := a.toolDefinitions()
	limiter := core.NewCallLimiter(a.maxToolRounds)

	for {
		msg, err := a.transcript.RequestCompletion(ctx, defs)
		if err != nil {
			return core.Message{}, err
		}

		if !msg.HasToolCalls() {
			return msg, nil
		}

		if err := limiter.Increment(); err != nil {
			a.logger.Error("agent.turn.aborted",
				"reason", "tool_rounds_exceeded",
				"max_rounds", a.maxToolRounds,
			)
			return core.Message{}, fmt.Errorf("%w (max %d)", ErrToolRoundsExceeded, a.maxToolRounds)
		}

		// Resolve every call of this batch in the order the model emitted
		// them so multi-tool turns have deterministic transcripts.
		for _, call := range msg.ToolCalls {
			a.transcript.AppendToolResult(call.ID, a.resolveToolCall(ctx, call))
		}
	}
}

// resolveToolCall looks the tool up and executes it, converting every
// failure mode into a textual payload. A malfunctioning tool never aborts
// the turn for the other calls in the batch or for the conversation.
func (a *Agent) resolveToolCall(ctx context.Context, call core.ToolCall) string {
	impl, ok := a.registry.Lookup(call.Name)
	if !ok {
		a.logger.Warn("agent.tool.not_found", "tool", call.Name, "tool_call_id", call.ID)
		return fmt.Sprintf("Error: Tool '%s' not found", call.Name)
	}

	start := time.Now()
	output, err := executeSafely(ctx, impl, call.Arguments)

	a.logger.Info("agent.tool.executed",
		"tool", call.Name,
		"tool_call_id", call.ID,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err != nil,
	)

	if err != nil {
		return "Error: " + errorMessage(err)
	}
	return output
}

// executeSafely invokes the tool with panic recovery, so a buggy tool
// degrades into an error payload instead of tearing the process down.
func executeSafely(ctx context.Context, impl tool.Tool, arguments string) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return impl.Execute(ctx, arguments)
}

// errorMessage prefers the bare tool message over the decorated ToolError
// rendering, matching the payloads the model is trained against.
func errorMessage(err error) string {
	var toolErr *tool.ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Message
	}
	return err.Error()
}

// Run sends the initial input, then keeps sending the literal "Continue"
// follow-up while the continuation policy approves the latest assistant
// message and the turn count stays below maxTurns. It returns the full
// transcript.
//
// The default policy is a heuristic substring match, not a semantic signal;
// supply a custom ContinuationPolicy for structured stop reasons.
func (a *Agent) Run(ctx context.Context, initialInput string, maxTurns int) ([]core.Message, error) {
	resp, err := a.SendMessage(ctx, initialInput)
	if err != nil {
		return a.Messages(), err
	}

	for turns := 1; turns < maxTurns && a.continuation.ShouldContinue(resp); turns++ {
		a.logger.Debug("agent.run.continue", "turn", turns+1, "max_turns", maxTurns)

		resp, err = a.SendMessage(ctx, ContinuePrompt)
		if err != nil {
			return a.Messages(), err
		}
	}

	return a.Messages(), nil
}

// toolDefinitions converts the registry into the wire-shaped definitions
// presented to the model. A nil slice keeps the tools field absent for
// tool-less agents.
func (a *Agent) toolDefinitions() []model.ToolDefinition {
	tools := a.registry.Tools()
	if len(tools) == 0 {
		return nil
	}
	defs := make([]model.ToolDefinition, len(tools))
	for i, t := range tools {
		defs[i] = model.NewToolDefinition(t.Name(), t.Description(), t.Parameters())
	}
	return defs
}
