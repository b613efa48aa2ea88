package strategy

import (
	"regexp"
	"strings"

	"fileorg/internal/model"
)

type patternRule struct {
	re       *regexp.Regexp
	category string
}

// Order matters: names may match several rules and the first one wins.
var patternRules = []patternRule{
	{regexp.MustCompile(`invoice|receipt|bill|payment`), "Finance"},
	{regexp.MustCompile(`resume|cv|cover.letter`), "Job Applications"},
	{regexp.MustCompile(`certificate|diploma|degree`), "Certificates"},
	{regexp.MustCompile(`project|proposal|plan`), "Projects"},
	{regexp.MustCompile(`report|analysis|research`), "Research"},
	{regexp.MustCompile(`manual|guide|tutorial|howto`), "Guides"},
	{regexp.MustCompile(`screenshot|capture`), "Screenshots"},
	{regexp.MustCompile(`backup|bak`), "Backups"},
	{regexp.MustCompile(`template|form`), "Templates"},
	{regexp.MustCompile(`letter|email`), "Correspondence"},
	{regexp.MustCompile(`meeting|agenda|minutes`), "Meetings"},
	{regexp.MustCompile(`contract|agreement|legal`), "Legal"},
	{regexp.MustCompile(`wallpaper|background`), "Wallpapers"},
	{regexp.MustCompile(`profile|avatar|headshot`), "Profile Pictures"},
	{regexp.MustCompile(`log|debug|error`), "Logs"},
	{regexp.MustCompile(`setup|install|config`), "Configuration"},
	{regexp.MustCompile(`dataset|data`), "Datasets"},
	{regexp.MustCompile(`icon|logo`), "Icons Logos"},
	{regexp.MustCompile(`banner|header|ad`), "Marketing"},
	{regexp.MustCompile(`social|facebook|instagram|linkedin|twitter`), "Social Media"},
}

// ByPattern matches the lower-cased file name against the pattern table and
// returns the category of the first match. ok is false when nothing matched;
// callers fall back to ByExtension.
func ByPattern(r model.FileRecord) (category string, ok bool) {
	name := strings.ToLower(r.Name)
	for _, rule := range patternRules {
		if rule.re.MatchString(name) {
			return rule.category, true
		}
	}
	return "", false
}
