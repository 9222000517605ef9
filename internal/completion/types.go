// Package completion talks to chat-completion LLM services. Each backend
// accepts a system/user message list and returns the generated choices.
package completion

import (
	"context"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type Choice struct {
	Message Message `json:"message"`
}

type Response struct {
	Choices []Choice `json:"choices"`
}

// FirstContent returns the content of the first choice, if any.
func (r *Response) FirstContent() (string, bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

// Client is a chat-completion capability.
type Client interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

type Config struct {
	Provider string        `mapstructure:"provider" json:"provider"`
	APIKey   string        `mapstructure:"api_key" json:"api_key"`
	BaseURL  string        `mapstructure:"base_url" json:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
}
