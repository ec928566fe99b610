package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const defaultTickInterval = 60 * time.Second

// Scheduler drives the auction lifecycle: an eager tick at start, then one
// tick per interval. A tick that is still in flight suppresses the next
// one rather than stacking.
type Scheduler struct {
	app      *App
	clock    clockwork.Clock
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	tickMu sync.Mutex
}

func NewScheduler(app *App, clock clockwork.Clock, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &Scheduler{
		app:      app,
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("auction scheduler already running")
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx)

	log.Info().
		Dur("interval", s.interval).
		Msg("auction scheduler started")

	return nil
}

func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return fmt.Errorf("auction scheduler not running")
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()

	log.Info().Msg("auction scheduler stopped")
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	// Tick immediately on start
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.Chan():
			s.tick(ctx)
		}
	}
}

// tick runs one lifecycle check. Errors and panics are logged and
// swallowed; the next tick gets a fresh attempt.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.tickMu.TryLock() {
		log.Warn().Msg("previous auction tick still in flight, skipping")
		return
	}
	defer s.tickMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Msg("auction tick panicked")
		}
	}()

	if err := s.app.CheckAndAdvance(ctx); err != nil {
		log.Error().Err(err).Msg("auction tick failed")
	}
}
