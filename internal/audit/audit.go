// Package audit writes the plain-text organization log.
package audit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fileorg/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one executed organization batch.
type Entry struct {
	Time       time.Time
	Directory  string
	Strategy   model.Strategy
	SortKey    model.SortKey
	Assignment model.Assignment
}

// Format renders e as a header line, one "name → category" line per file in
// assignment order and a trailing blank line.
func Format(e Entry) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] directory=%s strategy=%d sort=%d\n",
		e.Time.Format(timeLayout), e.Directory, int(e.Strategy), int(e.SortKey))
	for _, ae := range e.Assignment.Entries() {
		fmt.Fprintf(&b, "%s → %s\n", ae.Name, ae.Category)
	}
	b.WriteByte('\n')
	return b.Bytes()
}

// Log appends entries to a single file.
type Log struct {
	path string
	mu   sync.Mutex
}

// NewLog returns a Log writing to path. The file and its parent directory
// are created on first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Append writes e to the end of the log.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create audit log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	if _, err := f.Write(Format(e)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write audit log: %w", err)
	}
	return f.Close()
}
