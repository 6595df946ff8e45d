package sweeper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingExpirer struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (c *countingExpirer) ExpireIdle(_ context.Context, maxIdle time.Duration) (int, error) {
	c.calls.Add(1)
	c.maxIdle.Store(int64(maxIdle))
	return 2, nil
}

func TestSweeper_RunsImmediately(t *testing.T) {
	exp := &countingExpirer{}
	s := New(exp, Config{Interval: time.Hour, MaxIdle: 90 * time.Minute})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for exp.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweep never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := time.Duration(exp.maxIdle.Load()); got != 90*time.Minute {
		t.Errorf("maxIdle = %v, want 90m", got)
	}
}

func TestSweeper_StopHaltsSchedule(t *testing.T) {
	exp := &countingExpirer{}
	s := New(exp, Config{Interval: 20 * time.Millisecond, MaxIdle: time.Hour})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	s.Stop()
	after := exp.calls.Load()
	time.Sleep(100 * time.Millisecond)

	if got := exp.calls.Load(); got != after {
		t.Errorf("sweeps continued after Stop: %d -> %d", after, got)
	}
}
