// Package sweeper expires abandoned test sessions on a schedule, so a
// candidate who closes the browser mid-test does not hold an in_progress
// session forever.
package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// SessionExpirer expires sessions idle for longer than maxIdle and
// returns how many were expired.
type SessionExpirer interface {
	ExpireIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}

// Config controls sweep cadence and the idle cutoff.
type Config struct {
	// Interval between sweeps.
	Interval time.Duration

	// MaxIdle is how long a session may sit without activity before it
	// is expired.
	MaxIdle time.Duration
}

// DefaultConfig sweeps every 10 minutes and expires sessions idle for
// over 3 hours (the test itself runs under 3 hours).
func DefaultConfig() Config {
	return Config{
		Interval: 10 * time.Minute,
		MaxIdle:  3 * time.Hour,
	}
}

// Sweeper runs ExpireIdle on a fixed schedule.
type Sweeper struct {
	expirer   SessionExpirer
	cfg       Config
	scheduler *gocron.Scheduler
}

func New(expirer SessionExpirer, cfg Config) *Sweeper {
	return &Sweeper{
		expirer:   expirer,
		cfg:       cfg,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the sweep and returns immediately. The first sweep runs
// right away so a restart clears stale sessions without waiting a full
// interval.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.Every(s.cfg.Interval).StartImmediately().Do(s.sweep)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.expirer.ExpireIdle(ctx, s.cfg.MaxIdle)
	if err != nil {
		log.Printf("sweeper: expire idle sessions: %v", err)
		return
	}
	if n > 0 {
		log.Printf("sweeper: expired %d idle session(s)", n)
	}
}
