// Package app owns the dashboard state and runs one operation at a time.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"profiledesk/internal/activity"
	"profiledesk/internal/models"
	"profiledesk/internal/notify"
	"profiledesk/internal/repository"
	"profiledesk/internal/service"
	"profiledesk/internal/view"
)

// ActivityInitialized is recorded once shortly after startup.
const ActivityInitialized = "Application initialized"

var ErrNoNotificationSurface = errors.New("notification presenter is required")

type App struct {
	mu        sync.Mutex
	auth      *service.AuthService
	profiles  *service.ProfileService
	recorder  *activity.Recorder
	presenter *notify.Presenter
	log       zerolog.Logger
}

type Deps struct {
	Recorder  *activity.Recorder
	Presenter *notify.Presenter
	Profile   models.UserProfile
}

func New(deps Deps, log zerolog.Logger) (*App, error) {
	if deps.Presenter == nil {
		return nil, ErrNoNotificationSurface
	}
	if deps.Recorder == nil {
		deps.Recorder = activity.NewRecorder(log)
	}

	sessions := repository.NewSessionRepository()
	profiles := repository.NewProfileRepository(deps.Profile)

	auth, err := service.NewAuthService(sessions, deps.Recorder, deps.Presenter, log)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	return &App{
		auth:      auth,
		profiles:  service.NewProfileService(profiles, deps.Recorder, deps.Presenter, log),
		recorder:  deps.Recorder,
		presenter: deps.Presenter,
		log:       log,
	}, nil
}

// NewDefault builds an App seeded with the default profile.
func NewDefault(recorder *activity.Recorder, log zerolog.Logger) (*App, error) {
	return New(Deps{
		Recorder:  recorder,
		Presenter: notify.NewPresenter(),
		Profile:   models.DefaultProfile(),
	}, log)
}

func (a *App) Initialize() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recorder.Record(ActivityInitialized)
}

func (a *App) Login(username, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.Login(username, password)
}

func (a *App) LoginDemo() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.auth.LoginDemo()
}

func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.auth.Logout()
}

func (a *App) Session() models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.auth.Session()
}

func (a *App) Profile() models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profiles.Get()
}

func (a *App) MergeProfile(update models.ProfileUpdate) models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profiles.Merge(update)
}

func (a *App) SaveProfile(form models.ProfileForm) models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profiles.Save(form)
}

func (a *App) ResetProfile() models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profiles.Reset()
}

func (a *App) Activity() []models.ActivityEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.recorder.Entries()
}

func (a *App) Notification() (models.Notification, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.presenter.Current()
}

// DismissNotification clears the toast once the page has shown it.
func (a *App) DismissNotification(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.presenter.Dismiss(id)
}

// State captures a consistent snapshot for rendering.
func (a *App) State() view.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := view.State{
		Session:  a.auth.Session(),
		Profile:  a.profiles.Get(),
		Activity: a.recorder.Entries(),
	}
	if n, ok := a.presenter.Current(); ok {
		state.Notification = &n
	}
	return state
}

func (a *App) Page() view.Page {
	return view.Project(a.State())
}
