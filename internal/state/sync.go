package state

import (
	"io"
	"log/slog"
	"sync"
)

// Sync hands translated display states from background fetches to the UI
// event loop. It holds at most one undelivered state; a newer publication
// replaces an unread older one.
type Sync struct {
	mu      sync.Mutex
	updates chan DisplayState
	logger  *slog.Logger
}

// NewSync builds a Sync. A nil logger discards output.
func NewSync(logger *slog.Logger) *Sync {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sync{
		updates: make(chan DisplayState, 1),
		logger:  logger,
	}
}

// Publish translates rec and queues the result for the UI. It never blocks.
func (s *Sync) Publish(rec StatusRecord) {
	if rec.Failed() {
		s.logger.Warn("status lookup failed", "error", rec.Err)
	}
	display := Translate(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.updates:
	default:
	}
	s.updates <- display
}

// Updates is the receive side consumed by the UI.
func (s *Sync) Updates() <-chan DisplayState {
	return s.updates
}
