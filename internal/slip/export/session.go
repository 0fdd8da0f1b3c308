package export

import (
	"context"
	"errors"
	"sync"
)

// ErrExportInFlight rejects a second export against the same slip instance
// while one is still running.
var ErrExportInFlight = errors.New("export already in progress")

// Session serializes exports for one open slip dialog. The dialog's
// lifecycle owns the session: created on open, discarded on close.
type Session struct {
	mu   sync.Mutex
	busy bool
}

// Run executes one export job. A concurrent call fails fast with
// ErrExportInFlight; a canceled context abandons the pending result instead
// of handing back bytes for a dialog that no longer exists.
func (s *Session) Run(ctx context.Context, job func() ([]byte, error)) ([]byte, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrExportInFlight
	}
	s.busy = true
	s.mu.Unlock()

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			s.mu.Lock()
			s.busy = false
			s.mu.Unlock()
		}()
		data, err := job()
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.data, r.err
	}
}
