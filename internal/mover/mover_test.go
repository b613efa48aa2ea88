package mover

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileorg/internal/metrics"
	"fileorg/internal/model"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func scenarioAssignment() model.Assignment {
	return model.NewAssignment([]model.AssignmentEntry{
		{Name: "report.pdf", Category: "Documents"},
		{Name: "photo.png", Category: "Images"},
		{Name: "invoice_2024.txt", Category: "Finance"},
		{Name: "unknown.xyz", Category: "Other"},
	})
}

func TestMove_Scenario(t *testing.T) {
	dir := t.TempDir()
	a := scenarioAssignment()
	for _, n := range a.Names() {
		touch(t, filepath.Join(dir, n))
	}

	report := New(nil).Move(dir, a)

	assert.Equal(t, 4, report.Moved)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Failed)
	for _, e := range a.Entries() {
		assert.FileExists(t, filepath.Join(dir, e.Category, e.Name))
		assert.NoFileExists(t, filepath.Join(dir, e.Name))
	}
}

func TestMove_SecondRunSkipsEverything(t *testing.T) {
	dir := t.TempDir()
	a := scenarioAssignment()
	for _, n := range a.Names() {
		touch(t, filepath.Join(dir, n))
	}
	m := New(nil)
	first := m.Move(dir, a)
	require.Equal(t, 4, first.Moved)

	second := m.Move(dir, a)

	assert.Zero(t, second.Moved)
	assert.Equal(t, 4, second.Skipped)
	assert.Zero(t, second.Failed)
	for _, e := range a.Entries() {
		assert.FileExists(t, filepath.Join(dir, e.Category, e.Name))
	}
}

func TestMove_ConflictDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "b.txt"))
	existing := filepath.Join(dir, "Documents", "a.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o644))

	a := model.NewAssignment([]model.AssignmentEntry{
		{Name: "a.txt", Category: "Documents"},
		{Name: "b.txt", Category: "Documents"},
	})
	report := New(nil).Move(dir, a)

	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, model.OutcomeFailed, report.Results[0].Outcome)
	assert.Contains(t, report.Results[0].Reason, ErrMoveConflict.Error())

	b, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(b))
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "Documents", "b.txt"))
}

func TestMove_VanishedSource(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "here.txt"))
	a := model.NewAssignment([]model.AssignmentEntry{
		{Name: "gone.txt", Category: "Documents"},
		{Name: "here.txt", Category: "Documents"},
	})

	report := New(nil).Move(dir, a)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Moved)
	assert.Equal(t, ErrSourceVanished.Error(), report.Results[0].Reason)
}

func TestMove_CategoryDirFailureIsolated(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "b.png"))
	// A regular file where the category directory should go.
	touch(t, filepath.Join(dir, "Documents"))

	a := model.NewAssignment([]model.AssignmentEntry{
		{Name: "a.txt", Category: "Documents"},
		{Name: "b.png", Category: "Images"},
	})
	report := New(nil).Move(dir, a)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Moved)
	assert.Contains(t, report.Results[0].Reason, "create category directory")
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "Images", "b.png"))
}

func TestMove_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	locked := filepath.Join(dir, "Locked")
	require.NoError(t, os.Mkdir(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	a := model.NewAssignment([]model.AssignmentEntry{{Name: "a.txt", Category: "Locked"}})
	report := New(nil).Move(dir, a)

	require.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Results[0].Reason, ErrPermissionDenied.Error())
}

func TestMove_NestedLabel(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "trip.jpg"))
	a := model.NewAssignment([]model.AssignmentEntry{{Name: "trip.jpg", Category: "2023/November"}})

	report := New(nil).Move(dir, a)

	assert.Equal(t, 1, report.Moved)
	assert.FileExists(t, filepath.Join(dir, "2023", "November", "trip.jpg"))
	assert.Equal(t, "2023/November", report.Results[0].Category)
}

func TestMove_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	om, err := metrics.NewOrganizer(reg)
	require.NoError(t, err)

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	a := model.NewAssignment([]model.AssignmentEntry{
		{Name: "a.txt", Category: "Documents"},
		{Name: "missing.txt", Category: "Documents"},
	})
	New(nil, WithMetrics(om)).Move(dir, a)

	count, err := testutil.GatherAndCount(reg, "fileorg_moved_files_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
