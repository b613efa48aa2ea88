package strategy

import (
	"fmt"
	"time"

	"fileorg/internal/model"
)

// Date buckets files into "{year}/{month}" folders, e.g. "2023/November".
type Date struct {
	// PreferCaptureTime uses the EXIF capture time when the scanner found one.
	PreferCaptureTime bool
	// Now supplies the fallback time for records without a creation time.
	Now func() time.Time
}

// Classify returns the year/month label for r. It never fails.
func (d Date) Classify(r model.FileRecord) string {
	t := r.CreatedAt
	if d.PreferCaptureTime && !r.TakenAt.IsZero() {
		t = r.TakenAt
	}
	if t.IsZero() {
		if d.Now != nil {
			t = d.Now()
		} else {
			t = time.Now()
		}
	}
	return DateLabel(t)
}

// DateLabel formats t as "{year}/{full month name}".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d/%s", t.Year(), t.Month().String())
}
