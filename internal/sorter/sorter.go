// Package sorter orders scanned file records.
package sorter

import (
	"cmp"
	"slices"
	"strings"

	"fileorg/internal/model"
)

// Sort returns a new slice ordered by key. The sort is stable, so records
// that compare equal keep their scan order. Unknown keys keep scan order.
func Sort(records []model.FileRecord, key model.SortKey) []model.FileRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []model.FileRecord{}
	}
	if c := comparator(key); c != nil {
		slices.SortStableFunc(out, c)
	}
	return out
}

func comparator(key model.SortKey) func(a, b model.FileRecord) int {
	switch key {
	case model.SortByName:
		return func(a, b model.FileRecord) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case model.SortByCreatedAt:
		return func(a, b model.FileRecord) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case model.SortByModifiedAt:
		return func(a, b model.FileRecord) int { return a.ModifiedAt.Compare(b.ModifiedAt) }
	case model.SortBySizeAsc:
		return func(a, b model.FileRecord) int { return cmp.Compare(a.SizeBytes, b.SizeBytes) }
	case model.SortBySizeDesc:
		return func(a, b model.FileRecord) int { return cmp.Compare(b.SizeBytes, a.SizeBytes) }
	}
	return nil
}
