// Package events moves recorded activity onto a redis stream for the worker.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"profiledesk/internal/models"
)

const DefaultStream = "profiledesk:activity"

const (
	fieldDescription = "description"
	fieldTime        = "time"
	fieldAt          = "at"
)

type RedisPublisher struct {
	client *redis.Client
	stream string
}

func NewRedisPublisher(client *redis.Client, stream string) *RedisPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisPublisher{client: client, stream: stream}
}

func (p *RedisPublisher) Publish(ctx context.Context, entry models.ActivityEntry) error {
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: EntryValues(entry),
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// EntryValues is the stream field layout of one activity entry.
func EntryValues(entry models.ActivityEntry) map[string]any {
	return map[string]any{
		fieldDescription: entry.Description,
		fieldTime:        entry.Time,
		fieldAt:          entry.At.Format(time.RFC3339Nano),
	}
}

// DecodeEntry reverses EntryValues for a message read off the stream.
func DecodeEntry(values map[string]interface{}) (models.ActivityEntry, error) {
	description, ok := values[fieldDescription].(string)
	if !ok {
		return models.ActivityEntry{}, fmt.Errorf("missing %q field", fieldDescription)
	}

	entry := models.ActivityEntry{Description: description}
	if display, ok := values[fieldTime].(string); ok {
		entry.Time = display
	}
	if raw, ok := values[fieldAt].(string); ok && raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return models.ActivityEntry{}, fmt.Errorf("parse %q: %w", fieldAt, err)
		}
		entry.At = at
	}
	return entry, nil
}
