package sorter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fileorg/internal/model"
)

func names(recs []model.FileRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Name
	}
	return out
}

func TestSort(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recs := []model.FileRecord{
		{Name: "beta.txt", SizeBytes: 20, CreatedAt: base.Add(2 * time.Hour), ModifiedAt: base},
		{Name: "Alpha.txt", SizeBytes: 10, CreatedAt: base.Add(1 * time.Hour), ModifiedAt: base.Add(3 * time.Hour)},
		{Name: "gamma.txt", SizeBytes: 20, CreatedAt: base, ModifiedAt: base.Add(1 * time.Hour)},
		{Name: "delta.txt", SizeBytes: 5, CreatedAt: base.Add(2 * time.Hour), ModifiedAt: base.Add(2 * time.Hour)},
	}

	tests := []struct {
		key  model.SortKey
		want []string
	}{
		{model.SortByName, []string{"Alpha.txt", "beta.txt", "delta.txt", "gamma.txt"}},
		// beta and delta share a creation time and keep scan order.
		{model.SortByCreatedAt, []string{"gamma.txt", "Alpha.txt", "beta.txt", "delta.txt"}},
		{model.SortByModifiedAt, []string{"beta.txt", "gamma.txt", "delta.txt", "Alpha.txt"}},
		{model.SortBySizeAsc, []string{"delta.txt", "Alpha.txt", "beta.txt", "gamma.txt"}},
		{model.SortBySizeDesc, []string{"beta.txt", "gamma.txt", "Alpha.txt", "delta.txt"}},
		{model.SortKey(99), []string{"beta.txt", "Alpha.txt", "gamma.txt", "delta.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, names(Sort(recs, tt.key)))
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	recs := []model.FileRecord{{Name: "b"}, {Name: "a"}}
	_ = Sort(recs, model.SortByName)
	assert.Equal(t, []string{"b", "a"}, names(recs))
}

func TestSort_CaseInsensitiveTiesAreStable(t *testing.T) {
	recs := []model.FileRecord{{Name: "File.txt"}, {Name: "file.txt"}, {Name: "FILE.txt"}}
	assert.Equal(t, []string{"File.txt", "file.txt", "FILE.txt"}, names(Sort(recs, model.SortByName)))
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, Sort(nil, model.SortByName))
}
