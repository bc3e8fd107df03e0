package session

import (
	"sync"

	"cinescope/models"
)

// Session is the process-wide identity context. It is populated once
// after login (or the first successful Me call) and read, not
// re-fetched, by every consumer that needs the current user or role.
// Invalidated on logout and on unrecoverable auth failures.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Set records the authenticated user.
func (s *Session) Set(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Current returns the cached user, if one is set.
func (s *Session) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Invalidate forgets the cached user.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
