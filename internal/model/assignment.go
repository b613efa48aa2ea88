package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// Assignment maps file names to category labels for one classification run.
// Entries keep the order in which files were classified. An Assignment is
// never mutated after construction, so the layout shown in a preview is
// exactly the layout the mover executes.
type Assignment struct {
	entries []AssignmentEntry
	index   map[string]int
}

// AssignmentEntry is one file name and its category label.
type AssignmentEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewAssignment builds an Assignment from ordered entries. Labels are passed
// through SanitizeLabel, so every consumer sees the directory the mover will
// create. A repeated name keeps its first position and takes the last label.
func NewAssignment(entries []AssignmentEntry) Assignment {
	a := Assignment{
		entries: make([]AssignmentEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Category = SanitizeLabel(e.Category)
		if i, ok := a.index[e.Name]; ok {
			a.entries[i].Category = e.Category
			continue
		}
		a.index[e.Name] = len(a.entries)
		a.entries = append(a.entries, e)
	}
	return a
}

// Len returns the number of files in the assignment.
func (a Assignment) Len() int { return len(a.entries) }

// Get returns the label assigned to name.
func (a Assignment) Get(name string) (string, bool) {
	i, ok := a.index[name]
	if !ok {
		return "", false
	}
	return a.entries[i].Category, true
}

// Entries returns a copy of the entries in classification order.
func (a Assignment) Entries() []AssignmentEntry {
	out := make([]AssignmentEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Names returns the file names in classification order.
func (a Assignment) Names() []string {
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Name
	}
	return out
}

// Labels returns the distinct labels sorted lexicographically.
func (a Assignment) Labels() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range a.entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	sort.Strings(out)
	return out
}

// Counts returns the number of files per label.
func (a Assignment) Counts() map[string]int {
	out := make(map[string]int)
	for _, e := range a.entries {
		out[e.Category]++
	}
	return out
}

// Map returns the assignment as a plain map.
func (a Assignment) Map() map[string]string {
	out := make(map[string]string, len(a.entries))
	for _, e := range a.entries {
		out[e.Name] = e.Category
	}
	return out
}

// WithOverrides returns a new Assignment where each non-blank override
// replaces the label of a file already present. Unknown names are ignored
// so that an override can never add a file that was not scanned.
func (a Assignment) WithOverrides(overrides map[string]string) Assignment {
	entries := a.Entries()
	for i, e := range entries {
		if v, ok := overrides[e.Name]; ok {
			if v = strings.TrimSpace(v); v != "" {
				entries[i].Category = v
			}
		}
	}
	return NewAssignment(entries)
}

// MarshalJSON encodes the assignment as its ordered entry list.
func (a Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Entries())
}

// UnmarshalJSON decodes an ordered entry list.
func (a *Assignment) UnmarshalJSON(b []byte) error {
	var entries []AssignmentEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	*a = NewAssignment(entries)
	return nil
}
