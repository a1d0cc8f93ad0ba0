package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiledesk/internal/models"
)

func strPtr(s string) *string { return &s }

func TestProfileRepository_MergeOverwritesOnlyPresentFields(t *testing.T) {
	repo := NewProfileRepository(models.DefaultProfile())

	got := repo.Merge(models.ProfileUpdate{Name: strPtr("Jane")})

	want := models.DefaultProfile()
	want.Name = "Jane"
	assert.Equal(t, want, got)
	assert.Equal(t, want, repo.Get())
}

func TestProfileRepository_MergeAcceptsEmptyStrings(t *testing.T) {
	repo := NewProfileRepository(models.DefaultProfile())

	off := false
	repo.Merge(models.ProfileUpdate{Email: strPtr(""), Notifications: &off})

	got := repo.Get()
	assert.Empty(t, got.Email)
	assert.False(t, got.Notifications)
	assert.Equal(t, "John Doe", got.Name)
}

func TestProfileRepository_MergeIsIdempotentForCurrentValues(t *testing.T) {
	repo := NewProfileRepository(models.DefaultProfile())
	current := repo.Get()

	update := models.ProfileUpdate{
		Name:  strPtr(current.Name),
		Role:  strPtr(current.Role),
		Phone: strPtr(current.Phone),
	}
	first := repo.Merge(update)
	second := repo.Merge(update)

	assert.Equal(t, current, first)
	assert.Equal(t, first, second)
}

func TestProfileRepository_LaterWriteWins(t *testing.T) {
	repo := NewProfileRepository(models.DefaultProfile())

	repo.Merge(models.ProfileUpdate{Location: strPtr("Berlin")})
	repo.Merge(models.ProfileUpdate{Location: strPtr("Lisbon")})

	assert.Equal(t, "Lisbon", repo.Get().Location)
}

func TestProfileRepository_GetReturnsSnapshot(t *testing.T) {
	repo := NewProfileRepository(models.DefaultProfile())

	snap := repo.Get()
	snap.Name = "mutated"

	require.Equal(t, "John Doe", repo.Get().Name)
}

func TestSessionRepository_SetAndClear(t *testing.T) {
	repo := NewSessionRepository()
	require.False(t, repo.Get().LoggedIn())

	repo.Set(models.SessionUserAdmin)
	session := repo.Get()
	require.True(t, session.LoggedIn())
	assert.Equal(t, "admin", session.User())

	repo.Clear()
	assert.False(t, repo.Get().LoggedIn())
	assert.Equal(t, "", repo.Get().User())
}
