// Package notify holds the single toast shown on the dashboard.
package notify

import (
	"sync"

	"profiledesk/internal/ids"
	"profiledesk/internal/models"
)

type Style struct {
	Icon  string
	Title string
}

var styles = map[models.NotificationKind]Style{
	models.NotificationSuccess: {Icon: "bi bi-check-circle-fill text-success me-2", Title: "Success"},
	models.NotificationError:   {Icon: "bi bi-exclamation-circle-fill text-danger me-2", Title: "Error"},
	models.NotificationInfo:    {Icon: "bi bi-info-circle-fill text-primary me-2", Title: "Info"},
}

// StyleFor maps a kind to its icon class and title. Unknown kinds render
// as success, the presenter's default.
func StyleFor(kind models.NotificationKind) Style {
	if s, ok := styles[kind]; ok {
		return s
	}
	return styles[models.NotificationSuccess]
}

// Presenter keeps at most one notification. Presenting replaces whatever is
// showing; nothing is queued.
type Presenter struct {
	mu      sync.RWMutex
	current *models.Notification
	newID   func() string
}

func NewPresenter() *Presenter {
	return &Presenter{newID: ids.New}
}

func (p *Presenter) Present(message string, kind models.NotificationKind) models.Notification {
	if kind == "" {
		kind = models.NotificationSuccess
	}
	n := models.Notification{
		ID:      p.newID(),
		Message: message,
		Kind:    kind,
	}

	p.mu.Lock()
	p.current = &n
	p.mu.Unlock()

	return n
}

func (p *Presenter) Current() (models.Notification, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return models.Notification{}, false
	}
	return *p.current, true
}

// Dismiss clears the current notification if it is still the one identified
// by id. It reports whether anything was cleared.
func (p *Presenter) Dismiss(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil || p.current.ID != id {
		return false
	}
	p.current = nil
	return true
}
