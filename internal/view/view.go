// Package view projects application state onto the page. Project is pure;
// the templates only format what it returns.
package view

import (
	"embed"
	"html/template"
	"unicode"
	"unicode/utf8"

	"profiledesk/internal/models"
	"profiledesk/internal/notify"
)

const (
	ViewLogin     = "login"
	ViewDashboard = "dashboard"

	PageTemplate = "index.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// State is everything the page depends on.
type State struct {
	Session      models.Session
	Profile      models.UserProfile
	Activity     []models.ActivityEntry
	Notification *models.Notification
}

type ProfileCard struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	MemberSince string `json:"memberSince"`
	Status      string `json:"status"`
}

type Toast struct {
	ID      string                  `json:"id"`
	Kind    models.NotificationKind `json:"kind"`
	Message string                  `json:"message"`
	Icon    string                  `json:"icon"`
	Title   string                  `json:"title"`
}

type Page struct {
	View          string                 `json:"view"`
	CurrentUser   string                 `json:"currentUser,omitempty"`
	Card          *ProfileCard           `json:"card,omitempty"`
	Form          *models.ProfileForm    `json:"form,omitempty"`
	Activity      []models.ActivityEntry `json:"activity,omitempty"`
	ActivityEmpty bool                   `json:"activityEmpty"`
	Toast         *Toast                 `json:"toast,omitempty"`
}

func (p Page) Dashboard() bool {
	return p.View == ViewDashboard
}

// Project selects exactly one view and, for the dashboard, fills every bound
// field from the stored profile and the activity log.
func Project(s State) Page {
	page := Page{View: ViewLogin}
	if s.Notification != nil {
		style := notify.StyleFor(s.Notification.Kind)
		page.Toast = &Toast{
			ID:      s.Notification.ID,
			Kind:    s.Notification.Kind,
			Message: s.Notification.Message,
			Icon:    style.Icon,
			Title:   style.Title,
		}
	}

	if !s.Session.LoggedIn() {
		return page
	}

	page.View = ViewDashboard
	page.CurrentUser = capitalize(s.Session.User())
	page.Card = &ProfileCard{
		Name:        s.Profile.Name,
		Role:        s.Profile.Role,
		MemberSince: s.Profile.MemberSince,
		Status:      s.Profile.Status,
	}
	page.Form = &models.ProfileForm{
		Name:          s.Profile.Name,
		Email:         s.Profile.Email,
		Phone:         s.Profile.Phone,
		Role:          s.Profile.Role,
		Department:    s.Profile.Department,
		Location:      s.Profile.Location,
		Bio:           s.Profile.Bio,
		Notifications: s.Profile.Notifications,
	}
	page.Activity = make([]models.ActivityEntry, len(s.Activity))
	copy(page.Activity, s.Activity)
	page.ActivityEmpty = len(s.Activity) == 0

	return page
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Document is the template input: the projected page plus the form token
// every POST form must echo back.
type Document struct {
	Page
	CSRFToken string
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}
