package service

import (
	"github.com/rs/zerolog"

	"profiledesk/internal/models"
	"profiledesk/internal/repository"
)

const (
	MessageProfileSaved = "Your changes have been saved successfully!"
	MessageFormReset    = "Form reset to saved values"

	ActivityProfileUpdated = "Updated profile information"
)

type ProfileService struct {
	profiles *repository.ProfileRepository
	activity ActivityRecorder
	notifier Notifier
	log      zerolog.Logger
}

func NewProfileService(profiles *repository.ProfileRepository, activity ActivityRecorder, notifier Notifier, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		activity: activity,
		notifier: notifier,
		log:      log,
	}
}

func (s *ProfileService) Get() models.UserProfile {
	return s.profiles.Get()
}

// Merge writes a partial update without recording activity or notifying.
func (s *ProfileService) Merge(update models.ProfileUpdate) models.UserProfile {
	return s.profiles.Merge(update)
}

// Save stores a dashboard form submission as-is. No field is validated.
func (s *ProfileService) Save(form models.ProfileForm) models.UserProfile {
	profile := s.profiles.Merge(form.Update())
	s.activity.Record(ActivityProfileUpdated)
	s.notifier.Present(MessageProfileSaved, models.NotificationSuccess)
	s.log.Debug().Msg("profile saved")
	return profile
}

// Reset drops unsaved edits. The stored profile is left alone; the next
// render fills the form from it again.
func (s *ProfileService) Reset() models.UserProfile {
	s.notifier.Present(MessageFormReset, models.NotificationInfo)
	return s.profiles.Get()
}
