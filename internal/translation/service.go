package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/promptran/internal/completion"
	"github.com/valpere/promptran/internal/postprocess"
)

// Temperature favors determinism over creativity.
const Temperature = 0.3

// DefaultModel is used when no model is configured and the client's backend
// has no default of its own.
const DefaultModel = completion.DefaultOpenAIModel

var (
	// ErrTranslationFailed is returned for any completion failure. The
	// underlying cause is logged, never returned.
	ErrTranslationFailed = errors.New("translation failed")

	// ErrEmptyCompletion means the completion call succeeded but produced no
	// text. It matches ErrTranslationFailed under errors.Is.
	ErrEmptyCompletion = fmt.Errorf("%w: empty completion", ErrTranslationFailed)
)

type ServiceConfig struct {
	Model string
	// CleanOutput strips model artifacts such as echoed delimiters.
	CleanOutput bool
}

// Service translates requests through a completion client. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	client completion.Client
	config ServiceConfig
	logger *zap.Logger
}

func NewService(client completion.Client, config ServiceConfig, logger *zap.Logger) *Service {
	if config.Model == "" {
		config.Model = completion.DefaultModel(client.Name())
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		config: config,
		logger: logger,
	}
}

// Model returns the configured model identifier.
func (s *Service) Model() string {
	return s.config.Model
}

// Provider returns the name of the completion backend.
func (s *Service) Provider() string {
	return s.client.Name()
}

// Translate validates req, composes the prompt and calls the completion
// client. Errors are either *MissingFieldError or match ErrTranslationFailed.
//
// The completion call is detached from ctx cancellation: once issued it runs
// until the client returns. Deadlines come from the client itself.
func (s *Service) Translate(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	creq := completion.Request{
		Model: s.config.Model,
		Messages: []completion.Message{
			{Role: completion.RoleSystem, Content: SystemPrompt},
			{Role: completion.RoleUser, Content: ComposePrompt(req)},
		},
		Temperature: Temperature,
	}

	start := time.Now()
	resp, err := s.client.Complete(context.WithoutCancel(ctx), creq)
	latency := time.Since(start)
	if err != nil {
		s.logger.Error("completion failed",
			zap.String("provider", s.client.Name()),
			zap.String("model", s.config.Model),
			zap.Duration("latency", latency),
			zap.Error(err))
		return nil, ErrTranslationFailed
	}

	text, ok := resp.FirstContent()
	if s.config.CleanOutput {
		text = postprocess.Clean(text)
	}
	if !ok || text == "" {
		s.logger.Warn("completion returned no content",
			zap.String("provider", s.client.Name()),
			zap.String("model", s.config.Model),
			zap.Int("choices", choiceCount(resp)),
			zap.Duration("latency", latency))
		return nil, ErrEmptyCompletion
	}

	s.logger.Debug("translation completed",
		zap.String("provider", s.client.Name()),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int("text_len", len(req.Text)),
		zap.Duration("latency", latency))

	return &Result{Translation: text}, nil
}

func choiceCount(resp *completion.Response) int {
	if resp == nil {
		return 0
	}
	return len(resp.Choices)
}

// ResultFor maps a Translate error to the result returned to callers.
func ResultFor(err error) Result {
	var missing *MissingFieldError
	var malformed *MalformedPayloadError
	switch {
	case errors.As(err, &missing):
		return Result{Error: "Missing required fields"}
	case errors.As(err, &malformed):
		return Result{Error: "Invalid request body"}
	default:
		return Result{Error: "Translation failed"}
	}
}
