// Package app assembles the organizer pipeline and its optional backends
// from configuration. Both the CLI and the HTTP API start here.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"fileorg/internal/ai"
	"fileorg/internal/audit"
	"fileorg/internal/classifier"
	"fileorg/internal/config"
	"fileorg/internal/database"
	"fileorg/internal/database/migration"
	"fileorg/internal/metrics"
	"fileorg/internal/mover"
	"fileorg/internal/repository"
	"fileorg/internal/repository/postgres"
	"fileorg/internal/scanner"
	"fileorg/internal/service"
	"fileorg/internal/storage"
	"fileorg/internal/strategy"
)

// App holds the assembled services. DB is nil when persistence is disabled.
type App struct {
	DB        *sql.DB
	Organizer service.OrganizerService
	History   service.HistoryService
	Metrics   *metrics.Organizer
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// Build wires the pipeline. reg may be nil, in which case no metrics are
// recorded. Database and object storage are only connected when configured;
// an AI provider that cannot be built is logged and left out.
func Build(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, reg prometheus.Registerer) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{}

	if reg != nil {
		m, err := metrics.NewOrganizer(reg)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		a.Metrics = m
	}

	var (
		repo  repository.RunRepository
		store storage.Storage
	)
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		a.DB = db
		repo = postgres.NewRunPostgres(db)
	} else {
		logger.Info("run history disabled", zap.String("reason", "DB_HOST not set"))
	}

	if cfg.MinIO.Enabled() {
		m, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initialize object storage: %w", err)
		}
		store = m
	}

	clOpts := []classifier.Option{
		classifier.WithMetrics(a.Metrics),
		classifier.WithDate(strategy.Date{PreferCaptureTime: cfg.Organizer.DatePreferEXIF}),
	}
	collab, err := ai.New(ctx, cfg.AI, logger)
	switch {
	case err == nil:
		clOpts = append(clOpts, classifier.WithCollaborator(collab))
		logger.Info("ai classification enabled", zap.String("provider", cfg.AI.Provider))
	case errors.Is(err, ai.ErrNotConfigured):
	default:
		logger.Warn("ai classification disabled", zap.Error(err))
	}

	svcOpts := []service.Option{}
	if cfg.AuditLogPath != "" {
		svcOpts = append(svcOpts, service.WithAuditLog(audit.NewLog(cfg.AuditLogPath)))
	}
	if repo != nil {
		svcOpts = append(svcOpts, service.WithRunRepository(repo))
	}
	if store != nil {
		svcOpts = append(svcOpts, service.WithStorage(store))
	}

	a.Organizer = service.NewOrganizerService(
		scanner.New(logger, scanner.WithEXIF(cfg.Organizer.DatePreferEXIF)),
		classifier.New(logger, clOpts...),
		mover.New(logger, mover.WithMetrics(a.Metrics)),
		logger,
		svcOpts...,
	)
	a.History = service.NewHistoryService(repo, store)
	return a, nil
}
