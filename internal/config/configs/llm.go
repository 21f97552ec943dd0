package configs

import "time"

// LLM configures the chat-completions backend used by the assistant. Any
// OpenAI-compatible endpoint can be targeted through BaseURL.
type LLM struct {
	APIKey string `env:"API_KEY"`
	// BaseURL overrides the default OpenAI endpoint when non-empty.
	BaseURL   string        `env:"BASE_URL"`
	Model     string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	MaxTokens int           `env:"MAX_TOKENS" envDefault:"1000"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
