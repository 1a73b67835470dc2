package session

import (
	"errors"
	"sync"
)

var (
	// ErrNoIdentity is returned when no player username is configured.
	ErrNoIdentity = errors.New("username is not set")

	// ErrBusy is returned when a named operation is already held.
	ErrBusy = errors.New("checker is busy")
)

// Session holds the process-wide operation state: which named operations
// are running and which player identity is configured.
type Session struct {
	mu       sync.Mutex
	busy     map[string]struct{}
	identity string
}

// New creates a session with an optional initial identity.
func New(identity string) *Session {
	return &Session{
		busy:     make(map[string]struct{}),
		identity: identity,
	}
}

// TryAcquire marks name as busy. It returns ok=false, and a nil release,
// if name is already held. The release func is safe to call more than once.
func (s *Session) TryAcquire(name string) (release func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.busy[name]; held {
		return nil, false
	}
	s.busy[name] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.busy, name)
			s.mu.Unlock()
		})
	}, true
}

// IsBusy reports whether name is currently held.
func (s *Session) IsBusy(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, held := s.busy[name]
	return held
}

// Identity returns the configured username or ErrNoIdentity.
func (s *Session) Identity() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == "" {
		return "", ErrNoIdentity
	}
	return s.identity, nil
}

// SetIdentity replaces the configured username.
func (s *Session) SetIdentity(username string) {
	s.mu.Lock()
	s.identity = username
	s.mu.Unlock()
}
