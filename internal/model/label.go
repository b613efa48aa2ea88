package model

import "strings"

const illegalLabelChars = `<>:"\|?*`

// SanitizeLabel makes a category label safe to use as a relative directory
// path. Segments are split on "/", trimmed, stripped of characters that are
// illegal on common filesystems, and "." / ".." / empty segments are
// dropped. A label with nothing left becomes "Other".
func SanitizeLabel(label string) string {
	parts := strings.Split(label, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Map(func(r rune) rune {
			if r < 0x20 || r == 0x7f || strings.ContainsRune(illegalLabelChars, r) {
				return '_'
			}
			return r
		}, p)
		p = strings.TrimRight(strings.TrimSpace(p), ". ")
		if p == "" || p == "." || p == ".." {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return "Other"
	}
	return strings.Join(out, "/")
}
