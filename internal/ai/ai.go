// Package ai implements the content-classification collaborator on top of a
// text generation backend (Gemini or any OpenAI-compatible API).
//
// Every exchange uses tag-delimited prompts. Responses that ignore the tags
// are salvaged with best-effort extraction instead of being rejected.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fileorg/internal/strategy"
)

var (
	// ErrUnavailable wraps every backend failure.
	ErrUnavailable = errors.New("ai backend unavailable")
	// ErrNotConfigured is returned by New when no provider is selected.
	ErrNotConfigured = errors.New("ai backend not configured")
	// ErrEmptyResponse is returned when the backend answers with nothing usable.
	ErrEmptyResponse = errors.New("ai backend returned an empty response")
)

// Image is an inline image attached to a prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, img *Image) (string, error)
}

// Collaborator implements strategy.Collaborator.
type Collaborator struct {
	gen          Generator
	limiter      *rate.Limiter
	logger       *zap.Logger
	maxImageSide uint
}

var _ strategy.Collaborator = (*Collaborator)(nil)

// Option configures a Collaborator.
type Option func(*Collaborator)

// WithRateLimit throttles backend calls to perSec with the given burst.
// A non-positive perSec disables throttling.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *Collaborator) {
		if perSec <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}
}

// WithMaxImageSide scales attached images down to at most px on their
// longer side. Zero sends images as they are.
func WithMaxImageSide(px uint) Option {
	return func(c *Collaborator) { c.maxImageSide = px }
}

// NewCollaborator wraps gen.
func NewCollaborator(gen Generator, logger *zap.Logger, opts ...Option) *Collaborator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collaborator{gen: gen, logger: logger, maxImageSide: defaultMaxImageSide}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Describe returns a short description of a file. Text files send their
// leading content, images are attached inline (downscaled when large) and
// anything else, including images too large to decode, is described from
// its name alone.
func (c *Collaborator) Describe(ctx context.Context, in strategy.FileInput) (string, error) {
	var (
		prompt string
		img    *Image
	)
	if len(in.Image) > 0 && in.Text == "" {
		img = shrinkImage(&Image{Data: in.Image, MIMEType: in.MIMEType}, c.maxImageSide)
	}
	switch {
	case in.Text != "":
		prompt = describeTextPrompt(in.Name, in.Text)
	case img != nil:
		prompt = describeImagePrompt(in.Name)
	default:
		prompt = describeOtherPrompt(in.Name)
	}

	out, err := c.generate(ctx, prompt, img)
	if err != nil {
		return "", err
	}
	desc, ok := extractTag(out, "description")
	if !ok {
		c.logger.Warn("description tags missing, using full response", zap.String("file", in.Name))
		desc = strings.TrimSpace(out)
	}
	if desc == "" {
		return "", ErrEmptyResponse
	}
	return desc, nil
}

// SuggestCategories proposes folder names for a set of descriptions.
func (c *Collaborator) SuggestCategories(ctx context.Context, descriptions []string) ([]string, error) {
	out, err := c.generate(ctx, suggestPrompt(descriptions), nil)
	if err != nil {
		return nil, err
	}
	body, ok := extractTag(out, "categories")
	if !ok {
		c.logger.Warn("categories tags missing, splitting full response")
		body = out
	}
	var cats []string
	for _, s := range strings.Split(body, ",") {
		if s = strings.TrimSpace(s); s != "" {
			cats = append(cats, s)
		}
	}
	if len(cats) == 0 {
		return nil, ErrEmptyResponse
	}
	return cats, nil
}

// PickCategory chooses one of candidates for description. When the answer
// is not tagged the first candidate mentioned anywhere in it wins, and
// failing that the first candidate. The returned label is not guaranteed to
// be one of candidates.
func (c *Collaborator) PickCategory(ctx context.Context, description string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no candidate categories")
	}
	out, err := c.generate(ctx, pickPrompt(description, candidates), nil)
	if err != nil {
		return "", err
	}
	if label, ok := extractTag(out, "category"); ok && label != "" {
		return label, nil
	}
	label := firstMentioned(out, candidates)
	c.logger.Warn("category tags missing", zap.String("selected", label))
	return label, nil
}

func (c *Collaborator) generate(ctx context.Context, prompt string, img *Image) (string, error) {
	if c.gen == nil {
		return "", ErrUnavailable
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}
	out, err := c.gen.Generate(ctx, prompt, img)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return out, nil
}

// extractTag returns the trimmed text between <tag> and </tag>.
func extractTag(s, tag string) (string, bool) {
	open, closing := "<"+tag+">", "</"+tag+">"
	i := strings.Index(s, open)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(open):]
	j := strings.Index(rest, closing)
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}

func firstMentioned(s string, candidates []string) string {
	lower := strings.ToLower(s)
	for _, c := range candidates {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c
		}
	}
	return candidates[0]
}
