// Package model contains the domain types shared by the organizer pipeline.
// Types here carry no behaviour beyond small accessors; strategies, the mover
// and the renderers live in their own packages.
package model

import "time"

// FileRecord is an immutable snapshot of one file taken at scan time.
// A fresh scan supersedes it; it is never updated in place.
type FileRecord struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	// Extension is lower-cased and has no leading dot. It may be empty.
	Extension string `json:"extension"`
	MIMEType  string `json:"mime_type,omitempty"`
	// TakenAt is the EXIF capture time for photos; zero when unknown.
	TakenAt time.Time `json:"taken_at,omitempty"`
}

// SizeMB returns the size in megabytes rounded to two decimals.
func (r FileRecord) SizeMB() float64 {
	mb := float64(r.SizeBytes) / (1024 * 1024)
	return float64(int64(mb*100+0.5)) / 100
}
