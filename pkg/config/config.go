package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read at process start.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
)

const (
	DefaultModel        = "gpt-4"
	DefaultTemperature  = 0.7
	DefaultSystemPrompt = "You are a helpful and friendly AI assistant."
	DefaultPrompt       = "Tell me a dark joke in Bahasa Indonesia, but make sure it's not offensive. The joke is about politics."
)

// Config holds everything the chat entry points need. It is built once in
// main and passed down; nothing reads the environment after that.
type Config struct {
	Verbose bool

	APIKey  string
	BaseURL string
	Model   string

	// Temperature applies to interactive turns only. The one-shot runner
	// leaves it unset so the endpoint default is used.
	Temperature  float64
	SystemPrompt string
	Prompt       string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		Model:        DefaultModel,
		Temperature:  DefaultTemperature,
		SystemPrompt: DefaultSystemPrompt,
		Prompt:       DefaultPrompt,
	}
}

// FromEnv populates the process environment from .env files (missing files
// are ignored) and reads the credential and endpoint on top of DefaultConfig.
// With no arguments the .env file in the working directory is used.
func FromEnv(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	cfg := DefaultConfig()
	cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	cfg.BaseURL = strings.TrimSpace(os.Getenv(EnvBaseURL))
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
// An empty APIKey is kept as is: a missing credential only shows up when a
// request is sent.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if strings.TrimSpace(cfg.Prompt) == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = DefaultTemperature
	}
	return cfg
}
