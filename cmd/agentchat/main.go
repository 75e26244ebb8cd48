// Command agentchat is an interactive chat interface for a tinyagent: it
// reads a line of input, lets the agent resolve tool calls, prints the
// assistant's answer and persists input history across sessions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/tinyagent"
	"github.com/hupe1980/tinyagent/agent"
	"github.com/hupe1980/tinyagent/logging"
	"github.com/hupe1980/tinyagent/model"
	"github.com/hupe1980/tinyagent/model/anthropic"
	"github.com/hupe1980/tinyagent/model/openai"
	"github.com/hupe1980/tinyagent/tool"
)

const historySize = 1000

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.New(&logging.Config{
		Level:  parseLogLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	m, err := buildModel(cfg)
	if err != nil {
		log.Fatalf("model error: %v", err)
	}

	a, err := tinyagent.New(cfg.Objective, func(o *tinyagent.Options) {
		o.Model = m
		o.MaxToolRounds = cfg.MaxToolRounds
		o.Logger = logger
		o.BuiltinTools = buildTools(cfg, logger)
	})
	if err != nil {
		log.Fatalf("agent error: %v", err)
	}

	history, err := OpenHistory(cfg.HistoryFile, historySize)
	if err != nil {
		log.Fatalf("history error: %v", err)
	}
	defer history.Close()

	runREPL(a, history)
}

func buildModel(cfg *Config) (model.Model, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.NewModel(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
		})
	default:
		return openai.NewModel(func(o *openai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		})
	}
}

// buildTools assembles the built-in tools from the configured timeouts. A
// missing search credential disables the search tool but keeps the session
// usable.
func buildTools(cfg *Config, logger logging.Logger) []tool.Tool {
	tools := []tool.Tool{
		tool.NewCalculator(),
		tool.NewWebsiteFetcher(func(o *tool.WebsiteFetcherOptions) {
			o.Timeout = cfg.FetchTimeout
			o.PreviewLength = cfg.PreviewLength
		}),
	}

	search, err := tool.NewSearch(func(o *tool.SearchOptions) {
		o.Timeout = cfg.SearchTimeout
	})
	if err != nil {
		fmt.Printf("✗ Search tool not available: %v\n", err)
		logger.Warn("agentchat.search.disabled", "error", err.Error())
		return tools
	}

	fmt.Println("✓ Search tool initialized")
	return append(tools, search)
}

func runREPL(a *agent.Agent, history *History) {
	printBanner()

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if lowered := strings.ToLower(input); lowered == "exit" || lowered == "quit" {
			fmt.Println("Goodbye!")
			return
		}

		history.Append(input)

		fmt.Println("\nAgent is thinking...")
		resp, err := a.SendMessage(ctx, input)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			continue
		}

		printResponse(resp.Content)
	}
}

func printBanner() {
	line := strings.Repeat("=", 80)
	fmt.Println(line)
	fmt.Println("Agent Chat Interface")
	fmt.Println(line)
	fmt.Println("Type 'exit', 'quit', or press Ctrl+D to exit.")
	fmt.Println("Enter your message to interact with the agent.")
	fmt.Println(line)
}

func printResponse(content string) {
	line := strings.Repeat("=", 80)
	fmt.Println("\n" + line)
	fmt.Println(content)
	fmt.Println(line)
}

func parseLogLevel(level string) logging.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logging.LogLevelDebug
	case "info":
		return logging.LogLevelInfo
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelWarn
	}
}
