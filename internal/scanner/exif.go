package scanner

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

func exifCapable(ext string) bool {
	switch ext {
	case "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}

// captureTime reads DateTimeOriginal (falling back to DateTime) from the
// photo's EXIF block. Implausible years are rejected.
func captureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif: %w", err)
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("exif datetime: %w", err)
	}
	if t.Year() <= 1900 || t.Year() > time.Now().Year()+1 {
		return time.Time{}, fmt.Errorf("implausible capture year %d", t.Year())
	}
	return t, nil
}
