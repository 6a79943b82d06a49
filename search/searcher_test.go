package search

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"originbot/types"
)

type searchCall struct {
	query      string
	maxResults int
}

// fakeBackend returns scripted responses per call, in order
type fakeBackend struct {
	calls     []searchCall
	responses [][]string
	errs      []error
}

func (f *fakeBackend) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, searchCall{query: query, maxResults: maxResults})
	var urls []string
	var err error
	if i < len(f.responses) {
		urls = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return urls, err
}

type fakeCache struct {
	entries map[string][]string
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]string)}
}

func (f *fakeCache) Get(ctx context.Context, query string) ([]string, bool) {
	urls, ok := f.entries[query]
	return urls, ok
}

func (f *fakeCache) Set(ctx context.Context, query string, urls []string) {
	f.entries[query] = urls
	f.sets++
}

func newTestSearcher(t *testing.T, backend Backend, cache Cache) *Searcher {
	t.Helper()
	s, err := NewSearcher(SearcherConfig{Backend: backend, Cache: cache})
	if err != nil {
		t.Fatalf("failed to create searcher: %v", err)
	}
	return s
}

func TestNewSearcherRequiresBackend(t *testing.T) {
	if _, err := NewSearcher(SearcherConfig{}); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestFindEvidenceExactHit(t *testing.T) {
	backend := &fakeBackend{responses: [][]string{{"https://a.example", "https://b.example"}}}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "some original phrase")

	if len(backend.calls) != 1 {
		t.Fatalf("expected a single exact-phrase call, got %d", len(backend.calls))
	}
	if backend.calls[0].query != `"some original phrase"` {
		t.Errorf("expected quoted query, got %q", backend.calls[0].query)
	}
	if backend.calls[0].maxResults != MaxExactResults {
		t.Errorf("expected exact cap %d, got %d", MaxExactResults, backend.calls[0].maxResults)
	}
	if report.Outcome != types.OutcomeMatches {
		t.Errorf("expected matches outcome, got %s", report.Outcome)
	}
	if len(report.URLs) != 2 {
		t.Errorf("expected 2 URLs, got %d", len(report.URLs))
	}
}

func TestFindEvidenceFallbackAfterEmptyExact(t *testing.T) {
	backend := &fakeBackend{responses: [][]string{nil, {"https://loose.example"}}}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "some phrase")

	if len(backend.calls) != 2 {
		t.Fatalf("expected exact then fallback call, got %d call(s)", len(backend.calls))
	}
	if backend.calls[1].query != "some phrase" {
		t.Errorf("expected unquoted fallback query, got %q", backend.calls[1].query)
	}
	if backend.calls[1].maxResults != MaxFallbackResults {
		t.Errorf("expected fallback cap %d, got %d", MaxFallbackResults, backend.calls[1].maxResults)
	}
	if report.Outcome != types.OutcomeMatches {
		t.Errorf("expected matches outcome, got %s", report.Outcome)
	}
}

func TestFindEvidenceNoMatches(t *testing.T) {
	backend := &fakeBackend{responses: [][]string{nil, nil}}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "unmatched phrase")

	if len(backend.calls) != 2 {
		t.Fatalf("expected both phases to run, got %d call(s)", len(backend.calls))
	}
	if report.Outcome != types.OutcomeNoMatches {
		t.Errorf("expected no-matches outcome, got %s", report.Outcome)
	}
	if len(report.URLs) != 0 {
		t.Errorf("expected no URLs, got %v", report.URLs)
	}
}

func TestFindEvidenceExactErrorStillTriesFallback(t *testing.T) {
	backend := &fakeBackend{
		responses: [][]string{nil, {"https://recovered.example"}},
		errs:      []error{fmt.Errorf("rate limited"), nil},
	}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "phrase")
	if report.Outcome != types.OutcomeMatches {
		t.Errorf("expected fallback to recover, got %s", report.Outcome)
	}
}

func TestFindEvidenceUnavailableWhenBothPhasesFail(t *testing.T) {
	backend := &fakeBackend{
		errs: []error{fmt.Errorf("timeout"), fmt.Errorf("timeout")},
	}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "phrase")
	if report.Outcome != types.OutcomeUnavailable {
		t.Errorf("expected unavailable outcome, got %s", report.Outcome)
	}
}

func TestFindEvidenceCacheHitSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	cache := newFakeCache()
	cache.entries["cached phrase"] = []string{"https://cached.example"}
	s := newTestSearcher(t, backend, cache)

	report := s.FindEvidence(context.Background(), "cached phrase")

	if len(backend.calls) != 0 {
		t.Fatalf("expected backend untouched on cache hit, got %d call(s)", len(backend.calls))
	}
	if report.Outcome != types.OutcomeMatches {
		t.Errorf("expected matches outcome from cache, got %s", report.Outcome)
	}
}

func TestFindEvidenceCachedEmptyListIsNoMatches(t *testing.T) {
	backend := &fakeBackend{}
	cache := newFakeCache()
	cache.entries["known original"] = []string{}
	s := newTestSearcher(t, backend, cache)

	report := s.FindEvidence(context.Background(), "known original")
	if len(backend.calls) != 0 {
		t.Fatal("expected cached no-match to skip the backend")
	}
	if report.Outcome != types.OutcomeNoMatches {
		t.Errorf("expected no-matches outcome, got %s", report.Outcome)
	}
}

func TestFindEvidenceStoresResultInCache(t *testing.T) {
	backend := &fakeBackend{responses: [][]string{{"https://a.example"}}}
	cache := newFakeCache()
	s := newTestSearcher(t, backend, cache)

	s.FindEvidence(context.Background(), "fresh phrase")

	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	if _, ok := cache.entries["fresh phrase"]; !ok {
		t.Error("expected result cached under the raw query")
	}
}

func TestFindEvidenceTruncatesLongQuery(t *testing.T) {
	backend := &fakeBackend{responses: [][]string{{"https://a.example"}}}
	s := newTestSearcher(t, backend, nil)

	s.FindEvidence(context.Background(), strings.Repeat("x", 200))

	// Quoted query: 100 characters plus the two quote marks
	if got := len(backend.calls[0].query); got != 102 {
		t.Errorf("expected truncated quoted query of 102 bytes, got %d", got)
	}
}

func TestFindEvidenceEmptyQuery(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestSearcher(t, backend, nil)

	report := s.FindEvidence(context.Background(), "   ")
	if len(backend.calls) != 0 {
		t.Fatal("expected no backend call for empty query")
	}
	if report.Outcome != types.OutcomeNoMatches {
		t.Errorf("expected no-matches outcome, got %s", report.Outcome)
	}
}
