package repository

import (
	"sync"

	"profiledesk/internal/models"
)

// ProfileRepository keeps the single user profile in memory.
type ProfileRepository struct {
	mu      sync.RWMutex
	profile models.UserProfile
}

func NewProfileRepository(seed models.UserProfile) *ProfileRepository {
	return &ProfileRepository{profile: seed}
}

func (r *ProfileRepository) Get() models.UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

// Merge overwrites the fields present in update and returns the stored result.
func (r *ProfileRepository) Merge(update models.ProfileUpdate) models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = update.ApplyTo(r.profile)
	return r.profile
}
