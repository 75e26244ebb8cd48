package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI configuration. Values are resolved in order:
// defaults, optional YAML config file, environment variables, flags.
type Config struct {
	Provider      string        `yaml:"provider"` // openai or anthropic
	Model         string        `yaml:"model"`
	Objective     string        `yaml:"objective"`
	MaxToolRounds int           `yaml:"max_tool_rounds"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`
	SearchTimeout time.Duration `yaml:"search_timeout"`
	PreviewLength int           `yaml:"preview_length"`
	HistoryFile   string        `yaml:"history_file"`
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
}

func defaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Provider:      "openai",
		Objective:     "Help the user solve problems using available tools",
		MaxToolRounds: 10,
		FetchTimeout:  10 * time.Second,
		SearchTimeout: 30 * time.Second,
		PreviewLength: 2000,
		HistoryFile:   filepath.Join(home, ".agentchat_history"),
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// LoadConfig parses the config file, environment and command-line flags.
func LoadConfig(args []string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := defaultConfig()

	fs := flag.NewFlagSet("agentchat", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file")
	provider := fs.String("provider", "", "Completion provider (openai or anthropic)")
	modelID := fs.String("model", "", "Model identifier override")
	objective := fs.String("objective", "", "Agent objective")
	maxToolRounds := fs.Int("max-tool-rounds", 0, "Max tool resolution rounds per turn")
	historyFile := fs.String("history", "", "Input history file path")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if *provider != "" {
		cfg.Provider = *provider
	}
	if *modelID != "" {
		cfg.Model = *modelID
	}
	if *objective != "" {
		cfg.Objective = *objective
	}
	if *maxToolRounds > 0 {
		cfg.MaxToolRounds = *maxToolRounds
	}
	if *historyFile != "" {
		cfg.HistoryFile = *historyFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if cfg.Provider != "openai" && cfg.Provider != "anthropic" {
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AGENTCHAT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("AGENTCHAT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AGENTCHAT_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv("AGENTCHAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
