package textproc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSelectQueryPicksLongestSentence(t *testing.T) {
	long := "This considerably longer sentence carries far more detail."
	short := "A much shorter sentence here."
	text := short + " " + long

	got := SelectQuery(text, false)
	if got != long {
		t.Errorf("expected longest sentence %q, got %q", long, got)
	}
}

func TestSelectQueryIgnoresShortSentences(t *testing.T) {
	// Only the second sentence clears the minimum length
	text := "Too short. This sentence is long enough to qualify as a query."

	got := SelectQuery(text, false)
	if got != "This sentence is long enough to qualify as a query." {
		t.Errorf("unexpected selection %q", got)
	}
}

func TestSelectQueryFallbackPrefix(t *testing.T) {
	// No sentence-terminating punctuation at all
	text := strings.Repeat("word ", 40)

	got := SelectQuery(text, false)
	want := strings.TrimSpace(text[:FallbackPrefixLength])
	if got != want {
		t.Errorf("expected first %d characters %q, got %q", FallbackPrefixLength, want, got)
	}
}

func TestSelectQueryTruncatesToMaxLength(t *testing.T) {
	text := "The beginning of an extremely long sentence " + strings.Repeat("that keeps going ", 20) + "until it finally ends."

	got := SelectQuery(text, false)
	if utf8.RuneCountInString(got) > MaxQueryLength {
		t.Errorf("query exceeds %d characters: %d", MaxQueryLength, utf8.RuneCountInString(got))
	}
}

func TestSelectQueryNormalizes(t *testing.T) {
	text := "Citation markers[12] should not survive into the final query text."

	got := SelectQuery(text, true)
	if strings.Contains(got, "[12]") {
		t.Errorf("expected citation markers stripped, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo wörld", 5); got != "héllo" {
		t.Errorf("expected rune-aware truncation, got %q", got)
	}
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("expected short input unchanged, got %q", got)
	}
}
