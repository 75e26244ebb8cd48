// Package tinyagent provides a high-level façade over the agent, model and
// tool packages for building a minimal conversational agent: user text goes
// to a remote chat-completion endpoint, the model may invoke registered
// tools, results are fed back, and the loop repeats until a plain answer
// arrives. Most applications interact with this package by:
//  1. Creating an agent via New() (optionally overriding model and options)
//  2. Registering additional tools
//  3. Calling SendMessage for single turns or Run for budgeted sessions
//
// The façade delegates the actual state machine to agent.Agent while
// keeping setup ergonomics concise. Defaults use the OpenAI provider and
// the built-in Calculator and WebsiteFetcher tools; the Search tool is
// added when its credential is configured.
package tinyagent

import (
	"fmt"

	"github.com/hupe1980/tinyagent/agent"
	"github.com/hupe1980/tinyagent/logging"
	"github.com/hupe1980/tinyagent/model"
	"github.com/hupe1980/tinyagent/model/openai"
	"github.com/hupe1980/tinyagent/tool"
)

// Options configures the façade constructor.
type Options struct {
	// Model overrides the default OpenAI provider.
	Model model.Model
	// SystemMessage overrides the objective-derived system message.
	SystemMessage string
	// MaxToolRounds bounds tool resolution within one turn (0 = unlimited).
	MaxToolRounds int
	// Logger receives structured progress events (defaults to none).
	Logger logging.Logger
	// BuiltinTools are registered in order; defaults to Calculator and
	// WebsiteFetcher plus Search when SERPAPI_API_KEY is set. Supply an
	// explicit (possibly empty) slice to take full control.
	BuiltinTools []tool.Tool
}

// New assembles a ready-to-use agent with an objective, a completion model
// and the built-in tools.
func New(objective string, optFns ...func(o *Options)) (*agent.Agent, error) {
	opts := Options{
		MaxToolRounds: 10,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	m := opts.Model
	if m == nil {
		var err error
		m, err = openai.NewModel()
		if err != nil {
			return nil, fmt.Errorf("tinyagent: %w", err)
		}
	}

	a := agent.New(objective, m, func(o *agent.Options) {
		if opts.SystemMessage != "" {
			o.SystemMessage = opts.SystemMessage
		}
		o.MaxToolRounds = opts.MaxToolRounds
		o.Logger = opts.Logger
	})

	builtins := opts.BuiltinTools
	if builtins == nil {
		builtins = defaultTools(opts.Logger)
	}
	if err := a.RegisterTools(builtins...); err != nil {
		return nil, fmt.Errorf("tinyagent: %w", err)
	}

	return a, nil
}

// defaultTools returns the always-available built-ins plus Search when its
// credential resolves. A missing search credential only disables the tool.
func defaultTools(logger logging.Logger) []tool.Tool {
	tools := []tool.Tool{
		tool.NewCalculator(),
		tool.NewWebsiteFetcher(),
	}

	search, err := tool.NewSearch()
	if err != nil {
		logger.Warn("tinyagent.search.disabled", "error", err.Error())
		return tools
	}

	return append(tools, search)
}
