// Package session implements the two-slot pairing mechanism that holds a
// user's first submitted document until a second one arrives, then triggers
// a comparison and clears itself.
package session

import (
	"log"
	"sync"
	"time"

	"originbot/similarity"
	"originbot/types"
)

const (
	// DefaultSlotTTL bounds how long a pending first submission is kept
	DefaultSlotTTL = 30 * time.Minute

	// sweepInterval is how often expired slots are reclaimed in the background
	sweepInterval = 5 * time.Minute
)

// ScoreFunc computes a 0-100 similarity score between two texts
type ScoreFunc func(a, b string) float64

// SubmitResult is the outcome of a single submission: either the text was
// stored as the pending first half of a pair, or it completed a pair and
// carries the comparison report.
type SubmitResult struct {
	Pending bool
	Report  *types.SimilarityReport
}

type slot struct {
	text     string
	storedAt time.Time
}

// Store holds at most one pending text per user. The slot pop-or-store step
// runs under the store lock so concurrent submissions for the same user can
// never both see an empty slot or both consume the same stored text; the
// CPU-bound scoring runs outside the lock.
type Store struct {
	mu        sync.Mutex
	slots     map[string]slot
	ttl       time.Duration
	score     ScoreFunc
	threshold float64
	done      chan struct{}
	closeOnce sync.Once
}

// StoreConfig holds configuration for the pair store
type StoreConfig struct {
	// SlotTTL is how long a pending submission survives. Default: DefaultSlotTTL.
	SlotTTL time.Duration
	// Threshold is the verdict boundary. Default: similarity.DefaultThreshold.
	Threshold float64
	// Score overrides the similarity function, mainly for tests.
	Score ScoreFunc
}

// NewStore creates a pair store and starts its background sweeper
func NewStore(config StoreConfig) *Store {
	if config.SlotTTL <= 0 {
		config.SlotTTL = DefaultSlotTTL
	}
	if config.Threshold == 0 {
		config.Threshold = similarity.DefaultThreshold
	}
	if config.Score == nil {
		config.Score = similarity.Score
	}

	s := &Store{
		slots:     make(map[string]slot),
		ttl:       config.SlotTTL,
		score:     config.Score,
		threshold: config.Threshold,
		done:      make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Submit records a user's text. The first submission for a user is stored
// and reported as pending; the second consumes the stored slot and returns
// the comparison report. Consumption is destructive, so a third submission
// starts a fresh pair.
func (s *Store) Submit(userID, text string) SubmitResult {
	now := time.Now()

	s.mu.Lock()
	stored, ok := s.slots[userID]
	if ok && now.Sub(stored.storedAt) > s.ttl {
		// Stale first half; treat this submission as a fresh start
		delete(s.slots, userID)
		ok = false
	}
	if !ok {
		s.slots[userID] = slot{text: text, storedAt: now}
		s.mu.Unlock()
		return SubmitResult{Pending: true}
	}
	delete(s.slots, userID)
	s.mu.Unlock()

	score := s.score(stored.text, text)
	report := types.SimilarityReport{
		Score:     score,
		Verdict:   similarity.VerdictFor(score, s.threshold),
		CheckedAt: now,
	}
	return SubmitResult{Report: &report}
}

// Pending returns the number of users with an unconsumed first submission
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// Close stops the background sweeper
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for userID, stored := range s.slots {
		if stored.storedAt.Before(cutoff) {
			delete(s.slots, userID)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		log.Printf("Removed %d expired pair slot(s)", removed)
	}
}
