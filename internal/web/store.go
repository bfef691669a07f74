package web

import (
	"errors"
	"sync"
	"time"

	"github.com/antiquecw/importgen/internal/core"
	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID is unknown or has expired.
var ErrRunNotFound = errors.New("run not found")

// RunStore keeps completed conversion bundles in memory until their
// downloads expire. Nothing is written to disk; a run is a short-lived
// per-session artifact.
type RunStore struct {
	mu   sync.Mutex
	runs map[string]storedRun
	ttl  time.Duration
}

type storedRun struct {
	bundle  *core.Bundle
	expires time.Time
}

// NewRunStore creates a run store and starts its sweep goroutine.
func NewRunStore(ttl time.Duration) *RunStore {
	s := &RunStore{
		runs: make(map[string]storedRun),
		ttl:  ttl,
	}
	go s.sweep()
	return s
}

// Put stores a completed bundle and returns its run ID.
func (s *RunStore) Put(b *core.Bundle) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[id] = storedRun{bundle: b, expires: time.Now().Add(s.ttl)}

	return id
}

// Get returns the bundle for a run ID, or ErrRunNotFound when the run
// is unknown or expired.
func (s *RunStore) Get(id string) (*core.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	if time.Now().After(run.expires) {
		delete(s.runs, id)
		return nil, ErrRunNotFound
	}
	return run.bundle, nil
}

// sweep drops expired runs every minute.
func (s *RunStore) sweep() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()

		s.mu.Lock()
		for id, run := range s.runs {
			if now.After(run.expires) {
				delete(s.runs, id)
			}
		}
		s.mu.Unlock()
	}
}
