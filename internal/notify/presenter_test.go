package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiledesk/internal/models"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		kind  models.NotificationKind
		icon  string
		title string
	}{
		{models.NotificationSuccess, "bi bi-check-circle-fill text-success me-2", "Success"},
		{models.NotificationError, "bi bi-exclamation-circle-fill text-danger me-2", "Error"},
		{models.NotificationInfo, "bi bi-info-circle-fill text-primary me-2", "Info"},
		{"warning", "bi bi-check-circle-fill text-success me-2", "Success"},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			s := StyleFor(tc.kind)
			assert.Equal(t, tc.icon, s.Icon)
			assert.Equal(t, tc.title, s.Title)
		})
	}
}

func TestPresenter_PresentReplacesCurrent(t *testing.T) {
	p := NewPresenter()

	_, ok := p.Current()
	require.False(t, ok)

	first := p.Present("Welcome back!", models.NotificationSuccess)
	second := p.Present("Invalid credentials. Try admin/admin", models.NotificationError)

	require.NotEqual(t, first.ID, second.ID)

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, second, cur)
}

func TestPresenter_EmptyKindDefaultsToSuccess(t *testing.T) {
	p := NewPresenter()
	n := p.Present("saved", "")
	assert.Equal(t, models.NotificationSuccess, n.Kind)
}

func TestPresenter_DismissOnlyMatchingID(t *testing.T) {
	p := NewPresenter()
	stale := p.Present("old", models.NotificationInfo)
	fresh := p.Present("new", models.NotificationInfo)

	assert.False(t, p.Dismiss(stale.ID))
	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, fresh.ID, cur.ID)

	assert.True(t, p.Dismiss(fresh.ID))
	_, ok = p.Current()
	assert.False(t, ok)

	assert.False(t, p.Dismiss(fresh.ID))
}
