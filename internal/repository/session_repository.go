package repository

import (
	"sync"

	"profiledesk/internal/models"
)

// SessionRepository holds the one login slot of the process.
type SessionRepository struct {
	mu   sync.RWMutex
	user *string
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Get() models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.user == nil {
		return models.Session{}
	}
	user := *r.user
	return models.Session{CurrentUser: &user}
}

func (r *SessionRepository) Set(user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = &user
}

func (r *SessionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
}
