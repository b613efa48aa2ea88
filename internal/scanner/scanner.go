// Package scanner reads file metadata from a single directory level.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"fileorg/internal/model"
)

// ErrDirectoryNotFound is returned when the scan root is missing or is not a directory.
var ErrDirectoryNotFound = errors.New("directory not found")

// Scanner stats the regular files directly inside a directory.
type Scanner struct {
	logger   *zap.Logger
	readEXIF bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithEXIF enables reading the EXIF capture time of photos into FileRecord.TakenAt.
func WithEXIF(enabled bool) Option {
	return func(s *Scanner) { s.readEXIF = enabled }
}

// New constructs a Scanner. A nil logger disables logging.
func New(logger *zap.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scanner{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns one record per regular file directly inside dir, in directory
// listing order. Subdirectories are not descended into. Symlinks count as
// their target when it is a regular file; broken links are skipped.
func (s *Scanner) Scan(dir string) ([]model.FileRecord, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	records := make([]model.FileRecord, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		// os.Stat follows symlinks, so the mode below is the target's.
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Debug("skip unreadable entry", zap.String("path", path), zap.Error(err))
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		records = append(records, s.record(path, info))
	}
	return records, nil
}

func (s *Scanner) record(path string, info fs.FileInfo) model.FileRecord {
	name := filepath.Base(path)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	rec := model.FileRecord{
		Name:       name,
		Path:       path,
		SizeBytes:  info.Size(),
		CreatedAt:  creationTime(info),
		ModifiedAt: info.ModTime(),
		Extension:  ext,
		MIMEType:   GuessMIME(name),
	}
	if s.readEXIF && exifCapable(ext) {
		if t, err := captureTime(path); err == nil {
			rec.TakenAt = t
		} else {
			s.logger.Debug("no exif capture time", zap.String("path", path), zap.Error(err))
		}
	}
	return rec
}

// GuessMIME returns the MIME type registered for the file extension, without
// parameters, or an empty string.
func GuessMIME(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// Layout lists the files below dir grouped by their directory relative to
// dir, using forward slashes (e.g. "2024/March"). Files directly inside dir
// are not included.
func (s *Scanner) Layout(dir string) (map[string][]string, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Debug("skip unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, filepath.Dir(path))
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir {
				key := filepath.ToSlash(filepath.Join(rel, d.Name()))
				if _, ok := groups[key]; !ok {
					groups[key] = []string{}
				}
			}
			return nil
		}
		if rel == "." || !d.Type().IsRegular() {
			return nil
		}
		key := filepath.ToSlash(rel)
		groups[key] = append(groups[key], d.Name())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	// Intermediate directories of nested labels (e.g. "2024") hold no files
	// themselves; only keep directories that are leaves or contain files.
	for key, files := range groups {
		if len(files) > 0 {
			sort.Strings(files)
			continue
		}
		if hasChild(groups, key) {
			delete(groups, key)
		}
	}
	return groups, nil
}

func hasChild(groups map[string][]string, key string) bool {
	prefix := key + "/"
	for k := range groups {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func checkDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: empty path", ErrDirectoryNotFound)
	}
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}
	return nil
}
