// Package activity keeps the bounded, newest-first log of dashboard events.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"profiledesk/internal/models"
)

// MaxEntries is the number of entries kept; older ones fall off the tail.
const MaxEntries = 10

const publishTimeout = 2 * time.Second

type Publisher interface {
	Publish(ctx context.Context, entry models.ActivityEntry) error
}

type Recorder struct {
	mu        sync.RWMutex
	entries   []models.ActivityEntry
	now       func() time.Time
	location  *time.Location
	publisher Publisher
	log       zerolog.Logger
}

type Option func(*Recorder)

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

func WithLocation(loc *time.Location) Option {
	return func(r *Recorder) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithPublisher hands every recorded entry to p on the recording goroutine.
// Anything that talks to the network belongs behind a Feed.
func WithPublisher(p Publisher) Option {
	return func(r *Recorder) {
		r.publisher = p
	}
}

func NewRecorder(log zerolog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		entries:  make([]models.ActivityEntry, 0, MaxEntries),
		now:      time.Now,
		location: time.Local,
		log:      log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format renders an instant the way the activity list shows it,
// e.g. "Mar 5, 2025 at 09:07 AM".
func Format(t time.Time) string {
	return t.Format("Jan 2, 2006") + " at " + t.Format("03:04 PM")
}

// Record prepends a new entry and trims the log to MaxEntries.
func (r *Recorder) Record(description string) models.ActivityEntry {
	at := r.now().In(r.location)
	entry := models.ActivityEntry{
		Time:        Format(at),
		Description: description,
		At:          at,
	}

	r.mu.Lock()
	next := make([]models.ActivityEntry, 0, MaxEntries)
	next = append(next, entry)
	next = append(next, r.entries...)
	if len(next) > MaxEntries {
		next = next[:MaxEntries]
	}
	r.entries = next
	r.mu.Unlock()

	r.log.Debug().Str("description", description).Msg("activity recorded")
	r.publish(entry)

	return entry
}

func (r *Recorder) Entries() []models.ActivityEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ActivityEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Recorder) publish(entry models.ActivityEntry) {
	if r.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := r.publisher.Publish(ctx, entry); err != nil {
		r.log.Warn().Err(err).Str("description", entry.Description).Msg("publish activity failed")
	}
}
