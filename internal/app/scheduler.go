package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/afkscreen/internal/clock"
	"github.com/five82/afkscreen/internal/state"
	"github.com/five82/afkscreen/internal/twitch"
)

const defaultPollInterval = 5 * time.Second

// Publisher receives every completed lookup.
type Publisher interface {
	Publish(rec state.StatusRecord)
}

// SchedulerOptions tune a Scheduler. Zero values use the defaults.
type SchedulerOptions struct {
	Interval time.Duration
	Clock    clock.Clock
	Logger   *slog.Logger
}

type lifecycle int

const (
	idle lifecycle = iota
	running
	stopped
)

// Scheduler refreshes the channel status on a fixed cadence and on demand.
// Fetching always happens off the UI event loop.
type Scheduler struct {
	fetcher   twitch.StatusFetcher
	publisher Publisher
	interval  time.Duration
	clock     clock.Clock
	logger    *slog.Logger

	mu       sync.Mutex
	phase    lifecycle
	ctx      context.Context
	stop     chan struct{}
	done     chan struct{}
	inflight sync.WaitGroup
}

// NewScheduler builds a Scheduler. It does nothing until Start.
func NewScheduler(fetcher twitch.StatusFetcher, publisher Publisher, opts SchedulerOptions) *Scheduler {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		fetcher:   fetcher,
		publisher: publisher,
		interval:  interval,
		clock:     clk,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the refresh loop and returns immediately. The loop fetches
// once right away, then once per interval, until Stop is called or ctx is
// cancelled. Start has no effect after the first call or after Stop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != idle {
		return
	}
	s.phase = running
	s.ctx = ctx

	ticker := s.clock.NewTicker(s.interval)
	s.logger.Info("refresh loop started", "interval", s.interval)
	go s.loop(ctx, ticker)
}

func (s *Scheduler) loop(ctx context.Context, ticker *clock.Ticker) {
	defer close(s.done)
	defer ticker.Stop()

	for {
		if !s.fetchAndApply(ctx) {
			return
		}
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			s.Stop()
			return
		case <-ticker.C:
		}
	}
}

// TriggerManualRefresh starts an immediate lookup in the background without
// touching the loop's cadence. It never blocks, so it is safe to call from
// the UI event loop. It does nothing unless the scheduler is running.
func (s *Scheduler) TriggerManualRefresh() {
	s.mu.Lock()
	if s.phase != running {
		s.mu.Unlock()
		return
	}
	ctx := s.ctx
	s.mu.Unlock()

	go s.fetchAndApply(ctx)
}

// Stop ends the refresh loop at its next wait. A lookup already in flight
// finishes and publishes; no new lookup starts once Stop has returned.
// Calling Stop more than once is harmless.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case stopped:
		return
	case idle:
		close(s.done)
	}
	s.phase = stopped
	close(s.stop)
	s.logger.Info("refresh loop stopped")
}

// isRunning reports whether the scheduler has been started and not stopped.
func (s *Scheduler) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == running
}

// Done is closed when the refresh loop has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the loop has exited and every in-flight lookup has
// published. Call it only after Stop or after cancelling the Start context.
func (s *Scheduler) Wait() {
	<-s.done
	s.inflight.Wait()
}

// fetchAndApply performs one lookup and publishes it. It reports false,
// without fetching, once the scheduler has stopped.
func (s *Scheduler) fetchAndApply(ctx context.Context) bool {
	s.mu.Lock()
	if s.phase != running {
		s.mu.Unlock()
		return false
	}
	s.inflight.Add(1)
	s.mu.Unlock()
	defer s.inflight.Done()

	rec := s.fetcher.Fetch(ctx)
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = s.clock.Now()
	}
	s.publisher.Publish(rec)
	return true
}
