package eventparse

import (
	"regexp"
	"strings"
)

// abbreviations maps whole-word shorthand to its expansion. Applied after
// lowercasing, so only lowercase keys are needed.
var abbreviations = []struct {
	pattern *regexp.Regexp
	full    string
}{
	{regexp.MustCompile(`\btmr\b`), "tomorrow"},
	{regexp.MustCompile(`\byest\b`), "yesterday"},
	{regexp.MustCompile(`\btdy\b`), "today"},
	{regexp.MustCompile(`\btn\b`), "tonight"},
}

// Normalize lowercases and trims text, replaces "@" with "at", and expands
// the closed abbreviation set. It is idempotent: normalizing already
// normalized text is a no-op.
func Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.ReplaceAll(normalized, "@", "at")
	for _, abbrev := range abbreviations {
		normalized = abbrev.pattern.ReplaceAllString(normalized, abbrev.full)
	}
	return normalized
}
