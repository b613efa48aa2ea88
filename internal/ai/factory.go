package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"fileorg/internal/config"
)

const requestTimeout = 60 * time.Second

// New builds the collaborator selected by cfg. It returns ErrNotConfigured
// when no provider is set, so callers can run without AI support.
func New(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*Collaborator, error) {
	if cfg.Provider == "" {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   requestTimeout,
	}

	var (
		gen Generator
		err error
	)
	switch cfg.Provider {
	case "gemini":
		gen, err = NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.Model, httpClient)
	case "openai":
		gen, err = NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, httpClient)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return NewCollaborator(gen, logger.With(zap.String("ai_provider", cfg.Provider)),
		WithRateLimit(cfg.RatePerSec, cfg.Burst)), nil
}
