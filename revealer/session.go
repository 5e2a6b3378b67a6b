package revealer

import (
	"context"
	"sync"
)

// Session serializes resolution requests so the latest one always wins.
// Each Begin cancels the previous request's context and hands out a fresh
// generation number; a slow request finishing after a newer Begin can check
// Current and discard its result instead of overwriting newer display state.
type Session struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin registers a new request: the context of any in-flight request is
// cancelled and a derived, cancellable context is returned together with the
// request's generation number.
func (s *Session) Begin(parent context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.gen++
	return ctx, s.gen
}

// Current reports whether gen is still the newest generation. Completions
// holding a stale generation must drop their result.
func (s *Session) Current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}

// Cancel aborts the in-flight request, if any, without starting a new one.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
