package completion

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantName string
		wantErr  bool
	}{
		{name: "default is openai", cfg: Config{APIKey: "k"}, wantName: "openai"},
		{name: "openai case-insensitive", cfg: Config{Provider: "OpenAI", APIKey: "k"}, wantName: "openai"},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "openrouter", cfg: Config{Provider: "openrouter", APIKey: "k"}, wantName: "openrouter"},
		{name: "openrouter without key", cfg: Config{Provider: "openrouter"}, wantErr: true},
		{name: "ollama needs no key", cfg: Config{Provider: "ollama"}, wantName: "ollama"},
		{name: "gemini", cfg: Config{Provider: "gemini", APIKey: "k"}, wantName: "gemini"},
		{name: "gemini without key", cfg: Config{Provider: "gemini"}, wantErr: true},
		{name: "unknown", cfg: Config{Provider: "bard", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(context.Background(), tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got client %v", c)
				}
				if c != nil {
					t.Errorf("expected nil client on error, got %T", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Name() != tt.wantName {
				t.Errorf("expected %q, got %q", tt.wantName, c.Name())
			}
		})
	}
}

func TestDefaultModel(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{provider: "", want: DefaultOpenAIModel},
		{provider: "openai", want: DefaultOpenAIModel},
		{provider: "OpenRouter", want: "mistralai/mistral-nemo:free"},
		{provider: "ollama", want: "llama3.1:8b"},
		{provider: "gemini", want: "gemini-2.5-flash"},
		{provider: "bard", want: ""},
	}

	for _, tt := range tests {
		if got := DefaultModel(tt.provider); got != tt.want {
			t.Errorf("DefaultModel(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
	for _, p := range Providers {
		if DefaultModels[p] == "" {
			t.Errorf("provider %q has no default model", p)
		}
	}
}
