package stats

import (
	"sync"
	"testing"
)

func TestUsageCounting(t *testing.T) {
	u := NewUsage()

	u.Record("alice")
	u.Record("alice")
	u.Record("bob")
	u.RecordUser("carol")

	s := u.Snapshot()
	if s.DistinctUsers != 3 {
		t.Errorf("expected 3 distinct users, got %d", s.DistinctUsers)
	}
	if s.ChecksDone != 3 {
		t.Errorf("expected 3 checks, got %d", s.ChecksDone)
	}
}

func TestUsageZeroInitialized(t *testing.T) {
	s := NewUsage().Snapshot()
	if s.DistinctUsers != 0 || s.ChecksDone != 0 {
		t.Errorf("expected zeroed counters, got %+v", s)
	}
}

func TestUsageConcurrentRecords(t *testing.T) {
	u := NewUsage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u.Record("shared-user")
		}()
	}
	wg.Wait()

	s := u.Snapshot()
	if s.DistinctUsers != 1 {
		t.Errorf("expected 1 distinct user, got %d", s.DistinctUsers)
	}
	if s.ChecksDone != 50 {
		t.Errorf("expected 50 checks, got %d", s.ChecksDone)
	}
}
