package strategy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"fileorg/internal/model"
)

const (
	// MaxTextChars is how much of a text file is sent for description.
	MaxTextChars = 10000
	// MaxCandidates caps the category set suggested by the collaborator.
	MaxCandidates = 10
	// maxImageBytes bounds the image payload handed to vision-capable backends.
	maxImageBytes = 8 << 20
)

// DefaultCandidates is used when the collaborator cannot suggest categories.
var DefaultCandidates = []string{"Documents", "Images", "Videos", "Audio", "Archives", "Code", "Other"}

// Fallback phases reported to the fallback hook.
const (
	PhaseDescribe = "describe"
	PhaseSuggest  = "suggest"
	PhasePick     = "pick"
	PhaseOffList  = "off_list"
)

// FileInput is what the collaborator sees of a file.
type FileInput struct {
	Name     string
	MIMEType string
	// Text holds the leading characters of text files.
	Text string
	// Image holds the raw bytes of image files.
	Image []byte
}

// Collaborator is an external content-classification service.
type Collaborator interface {
	Describe(ctx context.Context, in FileInput) (string, error)
	SuggestCategories(ctx context.Context, descriptions []string) ([]string, error)
	PickCategory(ctx context.Context, description string, candidates []string) (string, error)
}

// AI classifies a batch of files in three phases: describe every file, ask
// for a shared set of candidate categories, then pick one candidate per file.
// Any failure degrades to ByExtension for the affected file only.
type AI struct {
	collab     Collaborator
	logger     *zap.Logger
	onFallback func(phase string)
}

// AIOption configures an AI strategy.
type AIOption func(*AI)

// WithFallbackHook registers a callback invoked once per fallback.
func WithFallbackHook(fn func(phase string)) AIOption {
	return func(a *AI) { a.onFallback = fn }
}

// NewAI returns an AI strategy backed by c.
func NewAI(c Collaborator, logger *zap.Logger, opts ...AIOption) *AI {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &AI{collab: c, logger: logger, onFallback: func(string) {}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ClassifyBatch returns one label per record, aligned with records.
// The only error is a cancelled context.
func (a *AI) ClassifyBatch(ctx context.Context, records []model.FileRecord) ([]string, error) {
	descriptions := make([]string, len(records))
	summary := make([]string, len(records))
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		desc, err := a.collab.Describe(ctx, readInput(r))
		if err != nil || strings.TrimSpace(desc) == "" {
			a.fallback(PhaseDescribe, r.Name, err)
			desc = fmt.Sprintf("File with extension %s", dotExt(r.Extension))
		}
		descriptions[i] = desc
		summary[i] = r.Name + ": " + desc
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	candidates := a.suggest(ctx, summary)
	a.logger.Debug("candidate categories", zap.Strings("categories", candidates))

	labels := make([]string, len(records))
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		picked, err := a.collab.PickCategory(ctx, descriptions[i], candidates)
		if err != nil {
			a.fallback(PhasePick, r.Name, err)
			labels[i] = ByExtension(r)
			continue
		}
		label, exact := MatchCandidate(picked, candidates)
		if !exact {
			a.fallback(PhaseOffList, r.Name, fmt.Errorf("category %q not in candidate set, using %q", picked, label))
		}
		labels[i] = label
	}
	return labels, nil
}

func (a *AI) suggest(ctx context.Context, summary []string) []string {
	raw, err := a.collab.SuggestCategories(ctx, summary)
	if err != nil {
		a.fallback(PhaseSuggest, "", err)
		return DefaultCandidates
	}
	out := CleanCandidates(raw)
	if len(out) == 0 {
		a.fallback(PhaseSuggest, "", errors.New("no categories suggested"))
		return DefaultCandidates
	}
	return out
}

func (a *AI) fallback(phase, name string, err error) {
	a.onFallback(phase)
	a.logger.Warn("ai classification fallback",
		zap.String("phase", phase),
		zap.String("file", name),
		zap.Error(err),
	)
}

// CleanCandidates trims names, drops blanks and duplicates, and keeps at
// most MaxCandidates entries in their original order.
func CleanCandidates(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.Trim(strings.TrimSpace(c), "`'\"")
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == MaxCandidates {
			break
		}
	}
	return out
}

// MatchCandidate maps a returned category onto the candidate set. An exact
// match is returned as is. Otherwise a case-insensitive match is preferred,
// then the candidate whose name length is closest to the returned string,
// with ties going to the earliest candidate. exact reports whether the
// returned category was already a candidate.
func MatchCandidate(got string, candidates []string) (label string, exact bool) {
	if len(candidates) == 0 {
		return Other, false
	}
	got = strings.TrimSpace(got)
	for _, c := range candidates {
		if c == got {
			return c, true
		}
	}
	for _, c := range candidates {
		if strings.EqualFold(c, got) {
			return c, false
		}
	}
	best, bestDiff := candidates[0], absDiff(len(candidates[0]), len(got))
	for _, c := range candidates[1:] {
		if d := absDiff(len(c), len(got)); d < bestDiff {
			best, bestDiff = c, d
		}
	}
	return best, false
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func dotExt(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return "." + ext
}

var textExtensions = map[string]bool{
	"txt": true, "md": true, "csv": true, "log": true, "json": true, "xml": true,
	"yaml": true, "yml": true, "ini": true, "cfg": true, "html": true, "css": true,
	"js": true, "ts": true, "py": true, "go": true, "java": true, "c": true, "h": true,
	"cpp": true, "rb": true, "php": true, "sh": true, "sql": true,
}

// IsText reports whether the record's content should be sent as text.
func IsText(r model.FileRecord) bool {
	return strings.HasPrefix(r.MIMEType, "text/") || textExtensions[r.Extension]
}

// readInput builds the collaborator input for r. Read errors downgrade the
// input to name and MIME type only.
func readInput(r model.FileRecord) FileInput {
	in := FileInput{Name: r.Name, MIMEType: r.MIMEType}
	switch {
	case IsText(r):
		if s, err := readText(r.Path, MaxTextChars); err == nil {
			in.Text = s
		}
	case strings.HasPrefix(r.MIMEType, "image/") && r.SizeBytes <= maxImageBytes:
		if b, err := os.ReadFile(r.Path); err == nil {
			in.Image = b
		}
	}
	return in
}

// readText returns up to maxChars characters from the start of the file,
// with invalid UTF-8 replaced.
func readText(path string, maxChars int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, int64(maxChars)*utf8.UTFMax))
	if err != nil {
		return "", err
	}
	s := strings.ToValidUTF8(string(b), "�")
	if utf8.RuneCountInString(s) > maxChars {
		s = string([]rune(s)[:maxChars])
	}
	return strings.TrimSpace(s), nil
}
