// Package stats tracks process-wide usage counters. Counters are
// zero-initialized at startup and reset only by restart.
package stats

import "sync"

// Usage records distinct users seen and checks performed
type Usage struct {
	mu     sync.Mutex
	users  map[string]struct{}
	checks int
}

// Snapshot is a read-only copy of the counters for reporting surfaces
type Snapshot struct {
	DistinctUsers int `json:"distinct_users"`
	ChecksDone    int `json:"checks_done"`
}

// NewUsage creates an empty usage tracker
func NewUsage() *Usage {
	return &Usage{users: make(map[string]struct{})}
}

// Record counts one completed check for the given user
func (u *Usage) Record(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users[userID] = struct{}{}
	u.checks++
}

// RecordUser marks a user as seen without counting a check. Used for
// interactions that do not finish a check, such as the first half of a
// document pair.
func (u *Usage) RecordUser(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users[userID] = struct{}{}
}

// Snapshot returns the current counter values
func (u *Usage) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return Snapshot{
		DistinctUsers: len(u.users),
		ChecksDone:    u.checks,
	}
}
