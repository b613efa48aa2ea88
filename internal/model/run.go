package model

import "time"

// Run is the persisted record of one executed organization.
// It mirrors the plain-text audit log entry and is stored by the run repository.
type Run struct {
	ID        string     `json:"id"`
	Directory string     `json:"directory"`
	Strategy  Strategy   `json:"strategy"`
	SortKey   SortKey    `json:"sort_key"`
	Entries   []RunEntry `json:"entries,omitempty"`
	Moved     int        `json:"moved"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	ReportKey string     `json:"report_key,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RunEntry is one file of a Run together with the outcome of its move.
type RunEntry struct {
	Filename string      `json:"filename"`
	Category string      `json:"category"`
	Outcome  MoveOutcome `json:"outcome"`
	Reason   string      `json:"reason,omitempty"`
}
