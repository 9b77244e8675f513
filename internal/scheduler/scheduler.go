package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"StockPulse/internal/app"
)

// Scheduler triggers the full refresh pipeline on a fixed interval. Manual
// triggers run the same pipeline. When serialize is on, an invocation that
// overlaps a still-running refresh is dropped; otherwise overlapping
// refreshes interleave and the app's staleness guards arbitrate.
type Scheduler struct {
	cron      *cron.Cron
	app       *app.App
	interval  time.Duration
	serialize bool
	running   sync.Mutex
}

// New creates a scheduler for the given refresh interval.
func New(a *app.App, interval time.Duration, serialize bool) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		app:       a,
		interval:  interval,
		serialize: serialize,
	}
}

// Register adds the periodic refresh entry.
func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.run); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the periodic refreshes.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[INFO] scheduler started, refreshing every %s", s.interval)
}

// Stop stops the periodic refreshes and waits for a running one to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow triggers a refresh immediately (manual trigger).
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	if s.serialize {
		if !s.running.TryLock() {
			log.Println("[INFO] refresh already running, dropping overlapping trigger")
			return
		}
		defer s.running.Unlock()
	}
	s.app.Refresh()
}
