// Package migration creates the run history schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is checked first; if it exists the schema is assumed current.
const sentinelTable = "public.organization_runs"

var steps = []migrationStep{
	{
		Name: "create_table_organization_runs",
		SQL: `CREATE TABLE IF NOT EXISTS organization_runs (
  id          UUID        PRIMARY KEY,
  directory   TEXT        NOT NULL,
  strategy    SMALLINT    NOT NULL CHECK (strategy BETWEEN 1 AND 5),
  sort_key    SMALLINT    NOT NULL CHECK (sort_key BETWEEN 1 AND 5),
  moved       INTEGER     NOT NULL DEFAULT 0,
  skipped     INTEGER     NOT NULL DEFAULT 0,
  failed      INTEGER     NOT NULL DEFAULT 0,
  report_key  TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_run_entries",
		SQL: `CREATE TABLE IF NOT EXISTS run_entries (
  run_id    UUID    NOT NULL REFERENCES organization_runs (id) ON DELETE CASCADE,
  position  INTEGER NOT NULL,
  filename  TEXT    NOT NULL,
  category  TEXT    NOT NULL,
  outcome   TEXT    NOT NULL,
  reason    TEXT    NOT NULL DEFAULT '',
  PRIMARY KEY (run_id, position)
);`,
	},
	{
		Name: "create_index_organization_runs_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_organization_runs_created_at ON organization_runs (created_at DESC);`,
	},
	{
		Name: "create_index_run_entries_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_run_entries_category ON run_entries (category);`,
	},
}

// EnsureMigrated applies the schema unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "database"))
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists); err != nil {
		logger.Error("db migration check failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		logger.Info("schema already exists, skipping migration", zap.Duration("duration", time.Since(start)))
		return nil
	}

	logger.Info("db migration start", zap.Int("steps", len(steps)))
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("db migration step failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("step_duration", time.Since(stepStart)))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logger.Debug("db migration step", zap.String("migration_step", step.Name), zap.Duration("step_duration", time.Since(stepStart)))
	}

	logger.Info("db migration success", zap.Duration("duration", time.Since(start)))
	return nil
}
