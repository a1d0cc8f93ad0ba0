package tasks

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"profiledesk/internal/events"
)

// AuditProcessor writes every activity entry from the stream to the log.
type AuditProcessor struct {
	logger zerolog.Logger
}

func NewAuditProcessor(logger zerolog.Logger) *AuditProcessor {
	return &AuditProcessor{
		logger: logger,
	}
}

func (p *AuditProcessor) Handle(_ context.Context, msg redis.XMessage) error {
	entry, err := events.DecodeEntry(msg.Values)
	if err != nil {
		return fmt.Errorf("decode activity %s: %w", msg.ID, err)
	}

	event := p.logger.Info().
		Str("message_id", msg.ID).
		Str("description", entry.Description).
		Str("time", entry.Time)
	if !entry.At.IsZero() {
		event = event.Time("at", entry.At)
	}
	event.Msg("activity")
	return nil
}
