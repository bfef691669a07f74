package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore tracks authenticated sessions in memory. A session is an
// opaque token with an expiry; there is nothing to persist, so a
// restart simply asks everyone for the password again.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
	ttl      time.Duration
}

// NewSessionStore creates a session store and starts its sweep
// goroutine.
func NewSessionStore(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
	}
	go s.sweep()
	return s
}

// Create opens a new session and returns its token.
func (s *SessionStore) Create() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(s.ttl)

	return token
}

// Valid reports whether the token belongs to a live session.
func (s *SessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Delete ends a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// sweep removes expired sessions every minute.
func (s *SessionStore) sweep() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()

		s.mu.Lock()
		for token, expiry := range s.sessions {
			if now.After(expiry) {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}
