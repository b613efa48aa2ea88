// Package tree renders file listings and category assignments as ASCII trees.
package tree

import (
	"sort"

	"fileorg/internal/model"
)

const (
	branch = "├── "
	last   = "└── "
	pipe   = "│   "
	indent = "    "
)

// Flat renders a plain list of file names, sorted lexicographically.
func Flat(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	lines := make([]string, 0, len(sorted))
	for i, n := range sorted {
		lines = append(lines, connector(i, len(sorted))+n)
	}
	return lines
}

// Assignment renders the proposed layout of an assignment: one node per
// category, each listing its files. The output does not depend on the
// order of the assignment's entries.
func Assignment(a model.Assignment) []string {
	groups := make(map[string][]string)
	for _, e := range a.Entries() {
		groups[e.Category] = append(groups[e.Category], e.Name)
	}
	return Layout(groups)
}

// Layout renders category → files groups. Categories and the files within
// each category are sorted lexicographically.
func Layout(groups map[string][]string) []string {
	cats := make([]string, 0, len(groups))
	for c := range groups {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var lines []string
	for i, c := range cats {
		isLast := i == len(cats)-1
		lines = append(lines, connector(i, len(cats))+c)

		prefix := pipe
		if isLast {
			prefix = indent
		}
		files := append([]string(nil), groups[c]...)
		sort.Strings(files)
		for j, f := range files {
			lines = append(lines, prefix+connector(j, len(files))+f)
		}
	}
	if lines == nil {
		lines = []string{}
	}
	return lines
}

func connector(i, n int) string {
	if i == n-1 {
		return last
	}
	return branch
}
