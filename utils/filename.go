// utils/filename.go
package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	disallowedRe = regexp.MustCompile(`[^a-z0-9_\-]+`)
)

// SafeFilename normalizes s into a filesystem-safe token: lowercase,
// whitespace collapsed to underscores, anything outside [a-z0-9_-]
// stripped, capped at 60 runes. The result is never empty; inputs that
// sanitize away entirely fall back to "invoice".
func SafeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRe.ReplaceAllString(s, "_")
	s = disallowedRe.ReplaceAllString(s, "")
	if r := []rune(s); len(r) > 60 {
		s = string(r[:60])
	}
	if s == "" {
		return "invoice"
	}
	return s
}
