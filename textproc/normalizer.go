package textproc

import (
	"regexp"
	"strings"
)

var (
	citationPattern   = regexp.MustCompile(`\[\d+\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize strips bracketed citation markers (e.g. "[12]" footnote
// references from encyclopedic copy-paste) and collapses whitespace runs,
// including newlines, into single spaces.
func Normalize(text string) string {
	cleaned := citationPattern.ReplaceAllString(text, "")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
