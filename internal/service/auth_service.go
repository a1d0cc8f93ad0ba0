package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"profiledesk/internal/models"
	"profiledesk/internal/repository"
	"profiledesk/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	adminUsername = "admin"
	adminPassword = "admin"
)

const (
	MessageWelcome            = "Welcome back!"
	MessageInvalidCredentials = "Invalid credentials. Try admin/admin"
	MessageDemoGranted        = "Demo access granted!"
	MessageLoggedOut          = "Successfully logged out"

	ActivityLoggedIn  = "Logged in successfully"
	ActivityDemoLogin = "Logged in via Quick Demo"
	ActivityLoggedOut = "Logged out"
)

type ActivityRecorder interface {
	Record(description string) models.ActivityEntry
}

type Notifier interface {
	Present(message string, kind models.NotificationKind) models.Notification
}

// AuthService is the login gate: one hardcoded account plus a demo bypass.
type AuthService struct {
	sessions     *repository.SessionRepository
	activity     ActivityRecorder
	notifier     Notifier
	passwordHash []byte
	log          zerolog.Logger
}

func NewAuthService(
	sessions *repository.SessionRepository,
	activity ActivityRecorder,
	notifier Notifier,
	log zerolog.Logger,
) (*AuthService, error) {
	hash, err := security.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &AuthService{
		sessions:     sessions,
		activity:     activity,
		notifier:     notifier,
		passwordHash: hash,
		log:          log,
	}, nil
}

func (s *AuthService) Session() models.Session {
	return s.sessions.Get()
}

// Login accepts exactly admin/admin. A rejected attempt changes nothing but
// the notification.
func (s *AuthService) Login(username, password string) error {
	if !s.checkCredentials(username, password) {
		s.log.Info().Msg("login rejected")
		s.notifier.Present(MessageInvalidCredentials, models.NotificationError)
		return ErrInvalidCredentials
	}

	s.sessions.Set(adminUsername)
	s.activity.Record(ActivityLoggedIn)
	s.notifier.Present(MessageWelcome, models.NotificationSuccess)
	s.log.Info().Str("user", adminUsername).Msg("logged in")
	return nil
}

func (s *AuthService) LoginDemo() {
	s.sessions.Set(models.SessionUserDemo)
	s.activity.Record(ActivityDemoLogin)
	s.notifier.Present(MessageDemoGranted, models.NotificationSuccess)
	s.log.Info().Str("user", models.SessionUserDemo).Msg("logged in")
}

// Logout records the event while the session is still active, then clears it.
func (s *AuthService) Logout() {
	s.activity.Record(ActivityLoggedOut)
	s.sessions.Clear()
	s.notifier.Present(MessageLoggedOut, models.NotificationSuccess)
	s.log.Info().Msg("logged out")
}

func (s *AuthService) checkCredentials(username, password string) bool {
	userOK := security.EqualConstantTime(username, adminUsername)
	passOK, err := security.VerifyPassword(password, s.passwordHash)
	if err != nil {
		s.log.Error().Err(err).Msg("verify password failed")
		return false
	}
	return userOK && passOK
}
