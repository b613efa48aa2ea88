package service

import (
	"context"
	"errors"
	"time"

	"fileorg/internal/model"
	"fileorg/internal/repository"
	"fileorg/internal/storage"
)

const reportURLExpiry = 15 * time.Minute

var (
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("run not found")
	ErrHistoryDisabled   = errors.New("run history is not configured")
	ErrReportUnavailable = errors.New("report is not archived")
)

// RunListResult is the service-level DTO for paginated runs.
type RunListResult struct {
	Items []model.Run `json:"data"`
	Total int         `json:"total"`
}

// HistoryService reads recorded runs.
type HistoryService interface {
	// List returns runs newest first using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*RunListResult, error)

	// Get returns a single run with its entries.
	Get(ctx context.Context, id string) (*model.Run, error)

	// ReportURL returns a temporary download link for the archived audit text.
	ReportURL(ctx context.Context, id string) (string, error)
}

type historyService struct {
	repo  repository.RunRepository
	store storage.Storage
}

// NewHistoryService constructs a HistoryService. Either dependency may be
// nil; the affected operations then report ErrHistoryDisabled or
// ErrReportUnavailable.
func NewHistoryService(repo repository.RunRepository, store storage.Storage) HistoryService {
	return &historyService{repo: repo, store: store}
}

func (s *historyService) List(ctx context.Context, limit, offset int) (*RunListResult, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RunListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*model.Run, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return run, nil
}

func (s *historyService) ReportURL(ctx context.Context, id string) (string, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.store == nil || run.ReportKey == "" {
		return "", ErrReportUnavailable
	}
	return s.store.PresignGet(ctx, run.ReportKey, reportURLExpiry)
}
