package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiledesk/internal/activity"
	"profiledesk/internal/models"
	"profiledesk/internal/notify"
	"profiledesk/internal/repository"
)

type fixture struct {
	sessions  *repository.SessionRepository
	profiles  *repository.ProfileRepository
	recorder  *activity.Recorder
	presenter *notify.Presenter
	auth      *AuthService
	profile   *ProfileService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		sessions:  repository.NewSessionRepository(),
		profiles:  repository.NewProfileRepository(models.DefaultProfile()),
		recorder:  activity.NewRecorder(zerolog.Nop()),
		presenter: notify.NewPresenter(),
	}
	auth, err := NewAuthService(f.sessions, f.recorder, f.presenter, zerolog.Nop())
	require.NoError(t, err)
	f.auth = auth
	f.profile = NewProfileService(f.profiles, f.recorder, f.presenter, zerolog.Nop())
	return f
}

func (f fixture) notification(t *testing.T) models.Notification {
	t.Helper()
	n, ok := f.presenter.Current()
	require.True(t, ok, "expected a notification")
	return n
}

func TestAuthService_LoginRejectsAnythingButAdminAdmin(t *testing.T) {
	f := newFixture(t)

	attempts := []struct{ user, pass string }{
		{"x", "y"},
		{"admin", ""},
		{"", "admin"},
		{"Admin", "admin"},
		{"admin", "ADMIN"},
		{" admin", "admin"},
		{"demo", "demo"},
	}

	for _, a := range attempts {
		err := f.auth.Login(a.user, a.pass)
		require.ErrorIs(t, err, ErrInvalidCredentials, "%q/%q", a.user, a.pass)
		assert.False(t, f.auth.Session().LoggedIn())
		assert.Equal(t, 0, f.recorder.Len())

		n := f.notification(t)
		assert.Equal(t, models.NotificationError, n.Kind)
		assert.Equal(t, MessageInvalidCredentials, n.Message)
	}
}

func TestAuthService_LoginFailureKeepsExistingSession(t *testing.T) {
	f := newFixture(t)
	f.auth.LoginDemo()

	require.ErrorIs(t, f.auth.Login("x", "y"), ErrInvalidCredentials)
	assert.Equal(t, "demo", f.auth.Session().User())
	assert.Equal(t, 1, f.recorder.Len())
}

func TestAuthService_LoginAdmin(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.auth.Login("admin", "admin"))

	assert.Equal(t, "admin", f.auth.Session().User())
	entries := f.recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, ActivityLoggedIn, entries[0].Description)

	n := f.notification(t)
	assert.Equal(t, models.NotificationSuccess, n.Kind)
	assert.Equal(t, MessageWelcome, n.Message)
}

func TestAuthService_LoginDemoFromAnyState(t *testing.T) {
	f := newFixture(t)

	f.auth.LoginDemo()
	assert.Equal(t, "demo", f.auth.Session().User())
	assert.Equal(t, 1, f.recorder.Len())

	require.NoError(t, f.auth.Login("admin", "admin"))
	f.auth.LoginDemo()
	assert.Equal(t, "demo", f.auth.Session().User())
	assert.Equal(t, 3, f.recorder.Len())
	assert.Equal(t, ActivityDemoLogin, f.recorder.Entries()[0].Description)
	assert.Equal(t, MessageDemoGranted, f.notification(t).Message)
}

type sessionProbe struct {
	sessions *repository.SessionRepository
	inner    ActivityRecorder
	seen     []models.Session
}

func (p *sessionProbe) Record(description string) models.ActivityEntry {
	p.seen = append(p.seen, p.sessions.Get())
	return p.inner.Record(description)
}

func TestAuthService_LogoutRecordsBeforeClearing(t *testing.T) {
	f := newFixture(t)
	probe := &sessionProbe{sessions: f.sessions, inner: f.recorder}
	auth, err := NewAuthService(f.sessions, probe, f.presenter, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, auth.Login("admin", "admin"))
	auth.Logout()

	assert.False(t, auth.Session().LoggedIn())
	require.Len(t, probe.seen, 2)
	assert.Equal(t, "admin", probe.seen[1].User(), "logout must be recorded while still logged in")

	entries := f.recorder.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ActivityLoggedOut, entries[0].Description)
	assert.Equal(t, MessageLoggedOut, f.notification(t).Message)
}

func TestAuthService_LogoutWhenLoggedOut(t *testing.T) {
	f := newFixture(t)

	f.auth.Logout()

	assert.False(t, f.auth.Session().LoggedIn())
	assert.Equal(t, 1, f.recorder.Len())
}

func TestProfileService_Save(t *testing.T) {
	f := newFixture(t)

	form := models.ProfileForm{
		Name:          "Jane Roe",
		Email:         "",
		Phone:         "not a phone",
		Role:          "Engineer",
		Department:    "Platform",
		Location:      "Remote",
		Bio:           "",
		Notifications: false,
	}
	got := f.profile.Save(form)

	want := models.DefaultProfile()
	want.Name = "Jane Roe"
	want.Email = ""
	want.Phone = "not a phone"
	want.Role = "Engineer"
	want.Department = "Platform"
	want.Location = "Remote"
	want.Bio = ""
	want.Notifications = false
	assert.Equal(t, want, got)
	assert.Equal(t, want, f.profile.Get())

	require.Equal(t, 1, f.recorder.Len())
	assert.Equal(t, ActivityProfileUpdated, f.recorder.Entries()[0].Description)

	n := f.notification(t)
	assert.Equal(t, models.NotificationSuccess, n.Kind)
	assert.Equal(t, MessageProfileSaved, n.Message)
}

func TestProfileService_ResetDoesNotMutate(t *testing.T) {
	f := newFixture(t)
	name := "Jane"
	f.profile.Merge(models.ProfileUpdate{Name: &name})
	before := f.profile.Get()

	got := f.profile.Reset()

	assert.Equal(t, before, got)
	assert.Equal(t, before, f.profile.Get())
	assert.Equal(t, 0, f.recorder.Len())

	n := f.notification(t)
	assert.Equal(t, models.NotificationInfo, n.Kind)
	assert.Equal(t, MessageFormReset, n.Message)
}

func TestProfileService_MergeIsQuiet(t *testing.T) {
	f := newFixture(t)
	role := "Owner"

	got := f.profile.Merge(models.ProfileUpdate{Role: &role})

	assert.Equal(t, "Owner", got.Role)
	assert.Equal(t, 0, f.recorder.Len())
	_, ok := f.presenter.Current()
	assert.False(t, ok)
}
