package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fileorg/internal/config"
	"fileorg/internal/model"
	"fileorg/internal/service"
)

func TestBuild_LocalOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"report.pdf", "photo.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	logPath := filepath.Join(t.TempDir(), "organization_log.txt")
	cfg := &config.AppConfig{AuditLogPath: logPath}
	reg := prometheus.NewRegistry()

	a, err := Build(context.Background(), cfg, zap.NewNop(), reg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.DB)
	assert.False(t, a.Organizer.AIEnabled())

	plan, err := a.Organizer.Analyze(context.Background(), dir, model.StrategyExtension, model.SortByName, nil)
	require.NoError(t, err)
	res, err := a.Organizer.Organize(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Report.Moved)
	assert.False(t, res.Recorded)
	assert.Equal(t, logPath, res.AuditLog)
	assert.FileExists(t, filepath.Join(dir, "Documents", "report.pdf"))

	n, err := testutil.GatherAndCount(reg, "fileorg_moved_files_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = a.History.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, service.ErrHistoryDisabled)
}

func TestBuild_UnknownAIProviderIsNotFatal(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := &config.AppConfig{AI: config.AIConfig{Provider: "llama-on-a-toaster"}}

	a, err := Build(context.Background(), cfg, zap.New(core), nil)
	require.NoError(t, err)
	assert.False(t, a.Organizer.AIEnabled())
	assert.Equal(t, 1, logs.FilterMessage("ai classification disabled").Len())
}

func TestBuild_DuplicateMetricsRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := Build(context.Background(), &config.AppConfig{}, nil, reg)
	require.NoError(t, err)

	_, err = Build(context.Background(), &config.AppConfig{}, nil, reg)
	assert.Error(t, err)
}
