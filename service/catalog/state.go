package catalog

import (
	"context"
	"sync"
)

// State holds the last good load for a view and guards against stale loads:
// a reload that finishes after a newer one started is discarded rather than
// overwriting fresher data. Generation numbers stand in for cancellation.
type State struct {
	loader *Loader
	view   View

	mu      sync.Mutex
	gen     uint64
	current *Result
	lastErr error
}

func NewState(loader *Loader, view View) *State {
	return &State{loader: loader, view: view}
}

// Reload runs a full load and installs the result unless a newer reload has
// started in the meantime. Returns the installed (or superseding) result.
func (s *State) Reload(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	res, err := s.loader.Load(ctx, s.view)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer reload superseded this one; keep its result.
		return s.current, s.lastErr
	}
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.current = res
	s.lastErr = nil
	return res, nil
}

// Current returns the last installed result, or (nil, error) when the last
// reload failed and nothing has been installed since.
func (s *State) Current() (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, s.lastErr
	}
	return s.current, nil
}

// Get returns the cached result, loading on first use.
func (s *State) Get(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	cur := s.current
	s.mu.Unlock()
	if cur != nil {
		return cur, nil
	}
	return s.Reload(ctx)
}
