package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"fileorg/internal/audit"
	"fileorg/internal/classifier"
	"fileorg/internal/model"
	"fileorg/internal/mover"
	"fileorg/internal/repository"
	"fileorg/internal/scanner"
	"fileorg/internal/sorter"
	"fileorg/internal/storage"
	"fileorg/internal/tree"
)

var (
	// ErrEmptyDirectory is returned by Organize for a plan with no files.
	ErrEmptyDirectory = errors.New("directory contains no files")
	ErrPlanRequired   = errors.New("plan is required")
)

var tracer = otel.Tracer("fileorg/internal/service")

// Snapshot is a sorted scan of one directory.
type Snapshot struct {
	Directory    string             `json:"directory"`
	SortKey      model.SortKey      `json:"sort_key"`
	Files        []model.FileRecord `json:"files"`
	CurrentTree  []string           `json:"current_tree"`
	ScanDuration time.Duration      `json:"scan_duration"`
}

// Plan is a previewed classification. Organize executes exactly this
// assignment and never re-classifies.
type Plan struct {
	Snapshot
	Strategy     model.Strategy   `json:"strategy"`
	Assignment   model.Assignment `json:"assignment"`
	ProposedTree []string         `json:"proposed_tree"`
	Categories   map[string]int   `json:"categories"`
	Empty        bool             `json:"empty"`
}

// WithOverrides returns a copy of p whose assignment and preview include
// overrides.
func (p *Plan) WithOverrides(overrides map[string]string) *Plan {
	cp := *p
	cp.Assignment = p.Assignment.WithOverrides(overrides)
	cp.ProposedTree = tree.Assignment(cp.Assignment)
	cp.Categories = cp.Assignment.Counts()
	return &cp
}

// Result describes one executed plan.
type Result struct {
	RunID      string           `json:"run_id"`
	Directory  string           `json:"directory"`
	Report     model.MoveReport `json:"report"`
	ResultTree []string         `json:"result_tree"`
	// AuditLog is the path the audit entry was appended to, if any.
	AuditLog string `json:"audit_log,omitempty"`
	// Recorded reports whether the run was saved to run history.
	Recorded  bool   `json:"recorded"`
	ReportKey string `json:"report_key,omitempty"`
}

// OrganizerService runs the scan, classify, preview and move pipeline.
type OrganizerService interface {
	// Scan lists the files of dir in the requested order.
	Scan(ctx context.Context, dir string, key model.SortKey) (*Snapshot, error)

	// Plan classifies a snapshot. An empty snapshot yields an empty plan, not an error.
	Plan(ctx context.Context, snap *Snapshot, s model.Strategy, overrides map[string]string) (*Plan, error)

	// Analyze is Scan followed by Plan.
	Analyze(ctx context.Context, dir string, s model.Strategy, key model.SortKey, overrides map[string]string) (*Plan, error)

	// Organize moves the files of plan, appends the audit log and records the run.
	// Failing to record the run is logged and reflected in Result.Recorded only.
	Organize(ctx context.Context, plan *Plan) (*Result, error)

	// Suggest returns the default label offered for manual classification.
	Suggest(r model.FileRecord) string

	// AIEnabled reports whether content classification is available.
	AIEnabled() bool
}

type organizerService struct {
	scanner    *scanner.Scanner
	classifier *classifier.Classifier
	mover      *mover.Mover
	logger     *zap.Logger

	auditLog *audit.Log
	repo     repository.RunRepository
	store    storage.Storage
	now      func() time.Time
}

// Option configures the organizer service.
type Option func(*organizerService)

// WithAuditLog appends every executed plan to l.
func WithAuditLog(l *audit.Log) Option {
	return func(s *organizerService) { s.auditLog = l }
}

// WithRunRepository enables run history.
func WithRunRepository(r repository.RunRepository) Option {
	return func(s *organizerService) { s.repo = r }
}

// WithStorage archives audit text of recorded runs.
func WithStorage(st storage.Storage) Option {
	return func(s *organizerService) { s.store = st }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *organizerService) { s.now = now }
}

// NewOrganizerService constructs a new OrganizerService.
func NewOrganizerService(sc *scanner.Scanner, cl *classifier.Classifier, mv *mover.Mover, logger *zap.Logger, opts ...Option) OrganizerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &organizerService{
		scanner:    sc,
		classifier: cl,
		mover:      mv,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *organizerService) Scan(ctx context.Context, dir string, key model.SortKey) (*Snapshot, error) {
	_, span := tracer.Start(ctx, "organizer.scan")
	defer span.End()
	span.SetAttributes(attribute.String("fileorg.directory", dir), attribute.String("fileorg.sort_key", key.String()))

	start := s.now()
	records, err := s.scanner.Scan(dir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scan failed")
		return nil, fmt.Errorf("scan: %w", err)
	}
	records = sorter.Sort(records, key)

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	span.SetAttributes(attribute.Int("fileorg.files", len(records)))
	return &Snapshot{
		Directory:    dir,
		SortKey:      key,
		Files:        records,
		CurrentTree:  tree.Flat(names),
		ScanDuration: s.now().Sub(start),
	}, nil
}

func (s *organizerService) Plan(ctx context.Context, snap *Snapshot, st model.Strategy, overrides map[string]string) (*Plan, error) {
	if snap == nil {
		return nil, ErrPlanRequired
	}
	ctx, span := tracer.Start(ctx, "organizer.plan")
	defer span.End()
	span.SetAttributes(attribute.String("fileorg.strategy", st.String()), attribute.Int("fileorg.files", len(snap.Files)))

	p := &Plan{Snapshot: *snap, Strategy: st}
	if len(snap.Files) == 0 {
		p.Empty = true
		p.Assignment = model.NewAssignment(nil)
		p.ProposedTree = []string{}
		p.Categories = map[string]int{}
		return p, nil
	}

	a, err := s.classifier.ClassifyAll(ctx, snap.Files, st, overrides)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classify failed")
		return nil, fmt.Errorf("classify: %w", err)
	}
	p.Assignment = a
	p.ProposedTree = tree.Assignment(a)
	p.Categories = a.Counts()
	return p, nil
}

func (s *organizerService) Analyze(ctx context.Context, dir string, st model.Strategy, key model.SortKey, overrides map[string]string) (*Plan, error) {
	snap, err := s.Scan(ctx, dir, key)
	if err != nil {
		return nil, err
	}
	return s.Plan(ctx, snap, st, overrides)
}

func (s *organizerService) Organize(ctx context.Context, plan *Plan) (*Result, error) {
	if plan == nil {
		return nil, ErrPlanRequired
	}
	if plan.Empty || plan.Assignment.Len() == 0 {
		return nil, ErrEmptyDirectory
	}
	ctx, span := tracer.Start(ctx, "organizer.organize")
	defer span.End()

	report := s.mover.Move(plan.Directory, plan.Assignment)
	span.SetAttributes(
		attribute.Int("fileorg.moved", report.Moved),
		attribute.Int("fileorg.skipped", report.Skipped),
		attribute.Int("fileorg.failed", report.Failed),
	)

	res := &Result{
		RunID:     uuid.NewString(),
		Directory: plan.Directory,
		Report:    report,
	}

	groups, err := s.scanner.Layout(plan.Directory)
	if err != nil {
		s.logger.Warn("result layout unavailable", zap.String("directory", plan.Directory), zap.Error(err))
		res.ResultTree = []string{}
	} else {
		res.ResultTree = tree.Layout(groups)
	}

	entry := audit.Entry{
		Time:       s.now(),
		Directory:  plan.Directory,
		Strategy:   plan.Strategy,
		SortKey:    plan.SortKey,
		Assignment: plan.Assignment,
	}
	if s.auditLog != nil {
		if err := s.auditLog.Append(entry); err != nil {
			s.logger.Error("audit log append failed", zap.String("path", s.auditLog.Path()), zap.Error(err))
		} else {
			res.AuditLog = s.auditLog.Path()
		}
	}

	if s.repo != nil {
		run := newRun(res.RunID, entry, report)
		if err := s.record(ctx, run, audit.Format(entry)); err != nil {
			span.RecordError(err)
			s.logger.Error("run not recorded", zap.String("run_id", run.ID), zap.Error(err))
		} else {
			res.Recorded = true
			res.ReportKey = run.ReportKey
		}
	}

	s.logger.Info("directory organized",
		zap.String("run_id", res.RunID),
		zap.String("directory", plan.Directory),
		zap.String("strategy", plan.Strategy.String()),
		zap.Int("moved", report.Moved),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))
	return res, nil
}

// record archives the audit text, then saves the run. The archived object is
// deleted again when the run cannot be saved.
func (s *organizerService) record(ctx context.Context, run *model.Run, text []byte) error {
	if s.store != nil {
		key := storage.ReportKey(run.ID)
		_, err := s.store.Put(ctx, key, bytes.NewReader(text), storage.PutObjectOptions{
			Size:        int64(len(text)),
			ContentType: "text/plain; charset=utf-8",
			Metadata:    map[string]string{"directory": run.Directory},
		})
		if err != nil {
			s.logger.Warn("report archival failed", zap.String("run_id", run.ID), zap.Error(err))
		} else {
			run.ReportKey = key
		}
	}

	if _, err := s.repo.Create(ctx, run); err != nil {
		if run.ReportKey != "" {
			if delErr := s.store.Delete(ctx, run.ReportKey); delErr != nil {
				return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
			run.ReportKey = ""
		}
		return fmt.Errorf("db save failed: %w", err)
	}
	return nil
}

func newRun(id string, e audit.Entry, report model.MoveReport) *model.Run {
	entries := make([]model.RunEntry, len(report.Results))
	for i, r := range report.Results {
		entries[i] = model.RunEntry{Filename: r.Name, Category: r.Category, Outcome: r.Outcome, Reason: r.Reason}
	}
	return &model.Run{
		ID:        id,
		Directory: e.Directory,
		Strategy:  e.Strategy,
		SortKey:   e.SortKey,
		Entries:   entries,
		Moved:     report.Moved,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
		CreatedAt: e.Time.UTC(),
	}
}

func (s *organizerService) Suggest(r model.FileRecord) string { return s.classifier.Suggest(r) }

func (s *organizerService) AIEnabled() bool { return s.classifier.AIEnabled() }
