// Package search finds candidate web sources for a piece of text. It runs a
// quoted exact-phrase query first and falls back to a loose query only when
// the exact attempt comes back empty.
package search

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"originbot/textproc"
	"originbot/types"
)

const (
	// MaxExactResults caps the quoted exact-phrase attempt
	MaxExactResults = 3

	// MaxFallbackResults caps the loose fallback attempt
	MaxFallbackResults = 2

	// DefaultTimeout bounds the full two-phase round trip
	DefaultTimeout = 8 * time.Second
)

// Backend describes the minimal web-search functionality required by the searcher
type Backend interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}

// Cache describes an optional query-result cache in front of the backend.
// Implementations must treat their own failures as misses.
type Cache interface {
	Get(ctx context.Context, query string) ([]string, bool)
	Set(ctx context.Context, query string, urls []string)
}

// Searcher issues the two-phase evidence search against a backend
type Searcher struct {
	backend Backend
	cache   Cache
	timeout time.Duration
}

// SearcherConfig holds configuration for the searcher
type SearcherConfig struct {
	Backend Backend
	// Cache is optional; nil disables caching.
	Cache Cache
	// Timeout for the full two-phase search. Default: DefaultTimeout.
	Timeout time.Duration
}

// NewSearcher creates a searcher from a preconfigured backend
func NewSearcher(config SearcherConfig) (*Searcher, error) {
	if config.Backend == nil {
		return nil, fmt.Errorf("search backend cannot be nil")
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Searcher{
		backend: config.Backend,
		cache:   config.Cache,
		timeout: config.Timeout,
	}, nil
}

// FindEvidence runs the two-phase search for a query and reports candidate
// source URLs. Backend failures never propagate: when every attempted phase
// errors the report carries the Unavailable outcome, otherwise zero results
// mean a genuine no-match.
func (s *Searcher) FindEvidence(ctx context.Context, query string) types.EvidenceReport {
	query = strings.TrimSpace(textproc.Truncate(query, textproc.MaxQueryLength))
	report := types.EvidenceReport{
		Query:     query,
		CheckedAt: time.Now(),
	}
	if query == "" {
		report.Outcome = types.OutcomeNoMatches
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.cache != nil {
		if urls, ok := s.cache.Get(ctx, query); ok {
			report.URLs = urls
			report.Outcome = outcomeFor(urls)
			return report
		}
	}

	// Phase 1: exact-phrase attempt
	urls, exactErr := s.backend.Search(ctx, `"`+query+`"`, MaxExactResults)
	if exactErr != nil {
		log.Printf("Warning: exact-phrase search failed: %v", exactErr)
		urls = nil
	}

	// Phase 2: loose fallback, only when the exact attempt found nothing
	var fallbackErr error
	if len(urls) == 0 {
		urls, fallbackErr = s.backend.Search(ctx, query, MaxFallbackResults)
		if fallbackErr != nil {
			log.Printf("Warning: fallback search failed: %v", fallbackErr)
			urls = nil
		}
	}

	if len(urls) == 0 && exactErr != nil && fallbackErr != nil {
		report.Outcome = types.OutcomeUnavailable
		return report
	}

	report.URLs = urls
	report.Outcome = outcomeFor(urls)

	if s.cache != nil {
		s.cache.Set(ctx, query, urls)
	}
	return report
}

func outcomeFor(urls []string) types.SearchOutcome {
	if len(urls) > 0 {
		return types.OutcomeMatches
	}
	return types.OutcomeNoMatches
}
