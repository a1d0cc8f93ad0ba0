package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiledesk/internal/activity"
	"profiledesk/internal/models"
	"profiledesk/internal/service"
	"profiledesk/internal/view"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewDefault(activity.NewRecorder(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	return a
}

func TestNew_RequiresPresenter(t *testing.T) {
	_, err := New(Deps{Profile: models.DefaultProfile()}, zerolog.Nop())
	require.ErrorIs(t, err, ErrNoNotificationSurface)
}

func TestApp_StartsLoggedOutWithDefaults(t *testing.T) {
	a := newTestApp(t)

	assert.False(t, a.Session().LoggedIn())
	assert.Equal(t, models.DefaultProfile(), a.Profile())
	assert.Empty(t, a.Activity())
	assert.Equal(t, view.ViewLogin, a.Page().View)
}

func TestApp_Scenario(t *testing.T) {
	a := newTestApp(t)

	a.Initialize()
	entries := a.Activity()
	require.Len(t, entries, 1)
	assert.Equal(t, ActivityInitialized, entries[0].Description)

	err := a.Login("x", "y")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	n, ok := a.Notification()
	require.True(t, ok)
	assert.Equal(t, models.NotificationError, n.Kind)
	assert.False(t, a.Session().LoggedIn())
	assert.Len(t, a.Activity(), 1)

	require.NoError(t, a.Login("admin", "admin"))
	assert.Equal(t, "admin", a.Session().User())
	assert.Equal(t, view.ViewDashboard, a.Page().View)
	entries = a.Activity()
	require.Len(t, entries, 2)
	assert.Equal(t, service.ActivityLoggedIn, entries[0].Description)

	// The dashboard submits every editable field; only the name differs.
	before := a.Profile()
	form := a.Page().Form
	require.NotNil(t, form)
	form.Name = "Jane"
	a.SaveProfile(*form)

	after := a.Profile()
	assert.Equal(t, "Jane", after.Name)
	before.Name = "Jane"
	assert.Equal(t, before, after)
	entries = a.Activity()
	require.Len(t, entries, 3)
	assert.Equal(t, service.ActivityProfileUpdated, entries[0].Description)
}

func TestApp_MergeIsIdempotentAndQuiet(t *testing.T) {
	a := newTestApp(t)
	name := "Jane"
	update := models.ProfileUpdate{Name: &name}

	first := a.MergeProfile(update)
	second := a.MergeProfile(update)

	assert.Equal(t, first, second)
	assert.Equal(t, "Jane", a.Profile().Name)
	assert.Equal(t, models.DefaultProfile().Email, a.Profile().Email)
	assert.Empty(t, a.Activity())
}

func TestApp_ProfileSurvivesLogout(t *testing.T) {
	a := newTestApp(t)
	a.LoginDemo()

	a.SaveProfile(models.ProfileForm{Name: "Jane", Email: "jane@example.com", Notifications: true})
	a.Logout()
	a.LoginDemo()

	assert.Equal(t, "Jane", a.Profile().Name)
	assert.Equal(t, "jane@example.com", a.Profile().Email)
	assert.Equal(t, "Demo", a.Page().CurrentUser)
}

func TestApp_ResetKeepsStoredProfile(t *testing.T) {
	a := newTestApp(t)
	a.LoginDemo()
	a.SaveProfile(models.ProfileForm{Name: "Stored"})
	before := a.Profile()

	a.ResetProfile()

	assert.Equal(t, before, a.Profile())
	n, ok := a.Notification()
	require.True(t, ok)
	assert.Equal(t, models.NotificationInfo, n.Kind)
	assert.Equal(t, "Stored", a.Page().Form.Name)
}

func TestApp_DismissNotification(t *testing.T) {
	a := newTestApp(t)
	a.LoginDemo()

	n, ok := a.Notification()
	require.True(t, ok)
	require.NotNil(t, a.Page().Toast)

	assert.True(t, a.DismissNotification(n.ID))
	assert.Nil(t, a.Page().Toast)
}

func TestApp_ActivityCappedAcrossOperations(t *testing.T) {
	a := newTestApp(t)
	a.Initialize()
	for i := 0; i < 6; i++ {
		a.LoginDemo()
		a.Logout()
	}

	entries := a.Activity()
	require.Len(t, entries, activity.MaxEntries)
	assert.Equal(t, service.ActivityLoggedOut, entries[0].Description)
	for _, e := range entries {
		assert.NotEqual(t, ActivityInitialized, e.Description)
	}
}

func TestApp_ConcurrentOperationsKeepInvariants(t *testing.T) {
	a := newTestApp(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user %d", i)
			a.LoginDemo()
			a.MergeProfile(models.ProfileUpdate{Name: &name})
			_ = a.Page()
			a.Logout()
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, len(a.Activity()), activity.MaxEntries)
	assert.False(t, a.Session().LoggedIn())
}

type stalledPublisher struct{}

func (stalledPublisher) Publish(ctx context.Context, _ models.ActivityEntry) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestApp_StalledFeedDoesNotHoldOperations(t *testing.T) {
	feed := activity.NewFeed(stalledPublisher{}, activity.DefaultFeedBuffer, zerolog.Nop())
	a, err := NewDefault(activity.NewRecorder(zerolog.Nop(), activity.WithPublisher(feed)), zerolog.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.LoginDemo()
	}()

	start := time.Now()
	_ = a.Page()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("login did not finish while the feed was stalled")
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, view.ViewDashboard, a.Page().View)
}
