// Package mover executes an Assignment by moving every file of a directory
// into its category subdirectory.
package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"fileorg/internal/metrics"
	"fileorg/internal/model"
)

var (
	ErrMoveConflict     = errors.New("destination already exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrSourceVanished   = errors.New("source file vanished")
)

// Mover relocates files. It holds no state between calls; concurrent runs
// against the same directory must be serialized by the caller.
type Mover struct {
	logger  *zap.Logger
	metrics *metrics.Organizer
}

// Option configures a Mover.
type Option func(*Mover)

// WithMetrics records one counter increment per file outcome.
func WithMetrics(m *metrics.Organizer) Option {
	return func(mv *Mover) { mv.metrics = m }
}

// New constructs a Mover.
func New(logger *zap.Logger, opts ...Option) *Mover {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Mover{logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Move creates every category directory of a below dir, then moves each
// file from dir/name to dir/label/name. Failures are recorded per file and
// never abort the batch. Files already in place are reported as skipped,
// so executing the same assignment twice is a no-op the second time.
func (m *Mover) Move(dir string, a model.Assignment) model.MoveReport {
	entries := a.Entries()
	dirErrs := make(map[string]error)

	for _, label := range a.Labels() {
		dirErrs[label] = os.MkdirAll(filepath.Join(dir, filepath.FromSlash(label)), 0o755)
	}

	report := model.MoveReport{Results: make([]model.MoveResult, 0, len(entries))}
	for _, e := range entries {
		res := model.MoveResult{Name: e.Name, Category: e.Category}
		err := dirErrs[e.Category]
		if err != nil {
			err = fmt.Errorf("create category directory: %w", classify(err))
		} else {
			res.Outcome, err = moveOne(dir, e.Name, e.Category)
		}
		if err != nil {
			res.Outcome = model.OutcomeFailed
			res.Reason = err.Error()
			m.logger.Warn("move failed", zap.String("file", e.Name), zap.String("category", e.Category), zap.Error(err))
		} else {
			m.logger.Debug("move", zap.String("file", e.Name), zap.String("category", e.Category), zap.String("outcome", string(res.Outcome)))
		}
		m.metrics.Moved(string(res.Outcome))
		report.Add(res)
	}
	return report
}

func moveOne(dir, name, label string) (model.MoveOutcome, error) {
	src := filepath.Join(dir, name)
	dstDir := filepath.Join(dir, filepath.FromSlash(label))
	dst := filepath.Join(dstDir, name)

	if filepath.Clean(filepath.Dir(src)) == filepath.Clean(dstDir) {
		return model.OutcomeSkipped, nil
	}

	_, srcErr := os.Lstat(src)
	_, dstErr := os.Lstat(dst)
	srcMissing := errors.Is(srcErr, fs.ErrNotExist)
	dstExists := dstErr == nil

	switch {
	case srcMissing && dstExists:
		return model.OutcomeSkipped, nil
	case srcMissing:
		return "", ErrSourceVanished
	case srcErr != nil:
		return "", classify(srcErr)
	case dstExists:
		return "", fmt.Errorf("%w: %s", ErrMoveConflict, filepath.ToSlash(filepath.Join(label, name)))
	}

	if err := os.Rename(src, dst); err != nil {
		return "", classify(err)
	}
	return model.OutcomeMoved, nil
}

func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return err
}
