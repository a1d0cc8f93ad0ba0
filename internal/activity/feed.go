package activity

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"profiledesk/internal/models"
)

// DefaultFeedBuffer is how many entries may wait for the publisher before
// new ones are dropped.
const DefaultFeedBuffer = 64

var (
	ErrFeedFull   = errors.New("activity feed buffer full")
	ErrFeedClosed = errors.New("activity feed closed")
)

// Feed queues entries for a slow Publisher and ships them from a single
// goroutine. Publish never waits on the downstream publisher.
type Feed struct {
	mu     sync.RWMutex
	closed bool
	queue  chan models.ActivityEntry
	done   chan struct{}

	publisher Publisher
	log       zerolog.Logger
}

func NewFeed(publisher Publisher, buffer int, log zerolog.Logger) *Feed {
	if buffer <= 0 {
		buffer = DefaultFeedBuffer
	}
	f := &Feed{
		queue:     make(chan models.ActivityEntry, buffer),
		done:      make(chan struct{}),
		publisher: publisher,
		log:       log,
	}
	go f.run()
	return f
}

// Publish enqueues entry. A full buffer drops it with ErrFeedFull.
func (f *Feed) Publish(_ context.Context, entry models.ActivityEntry) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return ErrFeedClosed
	}
	select {
	case f.queue <- entry:
		return nil
	default:
		return ErrFeedFull
	}
}

// Close stops accepting entries and waits for queued ones to be shipped,
// or for ctx to end.
func (f *Feed) Close(ctx context.Context) error {
	f.mu.Lock()
	if !f.closed {
		f.closed = true
		close(f.queue)
	}
	f.mu.Unlock()

	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Feed) run() {
	defer close(f.done)

	for entry := range f.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := f.publisher.Publish(ctx, entry); err != nil {
			f.log.Warn().Err(err).Str("description", entry.Description).Msg("ship activity failed")
		}
		cancel()
	}
}
