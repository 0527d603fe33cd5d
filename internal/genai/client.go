package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"studyflow/internal/config"
	"studyflow/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// Completer is the single capability the pipeline needs from a generative
// text model: one prompt in, free text out. No retry, no caching.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Typed upstream failures. Provider errors are classified once here so the
// rest of the code never string-matches error text.
var (
	ErrUpstreamAuth  = errors.New("completion provider rejected credentials")
	ErrUpstreamQuota = errors.New("completion provider quota exceeded")
)

// Client is the langchaingo-backed Completer.
type Client struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
}

// NewClient builds a Completer for the configured provider. Supported
// providers are "googleai" (Gemini) and "ollama".
func NewClient(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	var model llms.Model
	var err error

	switch cfg.Provider {
	case "googleai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("googleai provider requires an API key")
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	case "ollama":
		httpClient := &http.Client{Timeout: cfg.CallTimeout}
		model, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return &Client{
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.CallTimeout,
	}, nil
}

// Complete sends one prompt and returns the raw text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature))
	if err != nil {
		logger.Get().Error("Completion call failed", zap.Error(err))
		return "", classifyProviderError(err)
	}
	return response, nil
}

// classifyProviderError maps a provider error onto the typed sentinels.
// The provider libraries do not expose stable error codes, so detection
// still inspects the message text, but only in this one place.
func classifyProviderError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission denied") || strings.Contains(msg, "401"):
		return fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	case strings.Contains(msg, "quota") || strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", ErrUpstreamQuota, err)
	default:
		return err
	}
}

var _ Completer = (*Client)(nil)
