// Package classifier applies a category strategy to every scanned file and
// produces the Assignment that the preview and the mover share.
package classifier

import (
	"context"

	"go.uber.org/zap"

	"fileorg/internal/metrics"
	"fileorg/internal/model"
	"fileorg/internal/strategy"
)

// Classifier turns sorted file records into a complete Assignment.
type Classifier struct {
	logger  *zap.Logger
	date    strategy.Date
	collab  strategy.Collaborator
	metrics *metrics.Organizer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCollaborator enables the AI strategy. Without it, selecting the AI
// strategy classifies by extension.
func WithCollaborator(c strategy.Collaborator) Option {
	return func(cl *Classifier) { cl.collab = c }
}

// WithDate sets the date strategy settings.
func WithDate(d strategy.Date) Option {
	return func(cl *Classifier) { cl.date = d }
}

// WithMetrics records classification counts and AI fallbacks.
func WithMetrics(m *metrics.Organizer) Option {
	return func(cl *Classifier) { cl.metrics = m }
}

// New constructs a Classifier.
func New(logger *zap.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AIEnabled reports whether a collaborator was configured.
func (c *Classifier) AIEnabled() bool { return c.collab != nil }

// Suggest returns the default label offered for manual classification.
func (c *Classifier) Suggest(r model.FileRecord) string {
	return strategy.ByExtension(r)
}

// ClassifyAll assigns a label to every record, in record order. Pattern
// misses and AI failures fall back to the extension strategy per file.
// Non-blank overrides replace the computed label and are final; for the
// manual strategy the extension suggestion is the default.
// The only error is a cancelled context.
func (c *Classifier) ClassifyAll(ctx context.Context, records []model.FileRecord, s model.Strategy, overrides map[string]string) (model.Assignment, error) {
	labels, err := c.labels(ctx, records, s)
	if err != nil {
		return model.Assignment{}, err
	}

	entries := make([]model.AssignmentEntry, len(records))
	for i, r := range records {
		entries[i] = model.AssignmentEntry{Name: r.Name, Category: labels[i]}
	}
	c.metrics.Classified(s.String(), len(entries))

	a := model.NewAssignment(entries)
	if len(overrides) > 0 {
		a = a.WithOverrides(overrides)
	}
	return a, nil
}

func (c *Classifier) labels(ctx context.Context, records []model.FileRecord, s model.Strategy) ([]string, error) {
	if s == model.StrategyAI {
		if c.collab != nil {
			ai := strategy.NewAI(c.collab, c.logger, strategy.WithFallbackHook(c.metrics.AIFallback))
			return ai.ClassifyBatch(ctx, records)
		}
		c.logger.Warn("ai strategy selected without a collaborator, classifying by extension")
	}

	if !s.Valid() {
		c.logger.Warn("unknown strategy, classifying by extension", zap.Int("strategy", int(s)))
	}

	labels := make([]string, len(records))
	for i, r := range records {
		switch s {
		case model.StrategyDate:
			labels[i] = c.date.Classify(r)
		case model.StrategyPattern:
			if label, ok := strategy.ByPattern(r); ok {
				labels[i] = label
			} else {
				labels[i] = strategy.ByExtension(r)
			}
		default:
			labels[i] = strategy.ByExtension(r)
		}
	}
	return labels, ctx.Err()
}
