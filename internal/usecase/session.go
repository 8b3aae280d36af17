package usecase

import (
	"sync"

	"github.com/phenrril/modashop/internal/domain"
)

// Session holds the identity of the currently authenticated user. One
// instance lives per client session and is injected into whatever needs it;
// nothing here is a package-level global.
type Session struct {
	mu   sync.RWMutex
	user *domain.User
}

func NewSession() *Session { return &Session{} }

func (s *Session) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID returns the active identity, or "" when nobody is signed in.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}
