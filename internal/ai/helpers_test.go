package ai_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fileorg/internal/model"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// writeRecords creates text files in dir and returns their records in name order.
func writeRecords(t *testing.T, dir string, files map[string]string) []model.FileRecord {
	t.Helper()
	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]model.FileRecord, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte(files[n]), 0o644))
		out = append(out, model.FileRecord{
			Name:      n,
			Path:      p,
			Extension: strings.TrimPrefix(filepath.Ext(n), "."),
			MIMEType:  "text/plain",
		})
	}
	return out
}
