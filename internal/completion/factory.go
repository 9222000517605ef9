package completion

import (
	"context"
	"fmt"
	"strings"
)

// Providers lists the backend names accepted by New.
var Providers = []string{"openai", "openrouter", "ollama", "gemini"}

// DefaultModels is the model each backend uses when none is configured.
var DefaultModels = map[string]string{
	"openai":     DefaultOpenAIModel,
	"openrouter": "mistralai/mistral-nemo:free",
	"ollama":     "llama3.1:8b",
	"gemini":     "gemini-2.5-flash",
}

// DefaultModel returns the default model for provider, or "" when the
// provider is unknown. An empty provider selects OpenAI.
func DefaultModel(provider string) string {
	provider = strings.ToLower(provider)
	if provider == "" {
		provider = "openai"
	}
	return DefaultModels[provider]
}

// New constructs the backend named by cfg.Provider. An empty provider selects
// OpenAI.
func New(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout), nil
	case "openrouter":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenRouter API key required")
		}
		return NewOpenRouterClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout), nil
	case "ollama":
		return NewOllamaClient(cfg.BaseURL, cfg.Timeout), nil
	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q (supported: %s)", cfg.Provider, strings.Join(Providers, ", "))
	}
}
