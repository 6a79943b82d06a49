package textproc

import (
	"regexp"
	"strings"
)

const (
	// MinSentenceLength is the shortest sentence considered search-worthy
	MinSentenceLength = 20

	// FallbackPrefixLength is how much of the raw text is used when no
	// sentence clears the minimum length
	FallbackPrefixLength = 80

	// MaxQueryLength bounds the query to what search backends accept
	MaxQueryLength = 100
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// SelectQuery extracts the most search-worthy fragment of a text for use as
// a web search query. The longest sentence above the minimum length is
// treated as the most information-dense; if no sentence qualifies, the first
// FallbackPrefixLength characters of the raw text are used instead. The
// result is always truncated to MaxQueryLength.
func SelectQuery(text string, normalize bool) string {
	source := text
	if normalize {
		source = Normalize(text)
	}

	best := ""
	for _, sentence := range sentencePattern.FindAllString(source, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= MinSentenceLength {
			continue
		}
		if len(sentence) > len(best) {
			best = sentence
		}
	}

	if best == "" {
		best = strings.TrimSpace(Truncate(text, FallbackPrefixLength))
	}

	return Truncate(best, MaxQueryLength)
}

// Truncate limits a string to at most n runes
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
