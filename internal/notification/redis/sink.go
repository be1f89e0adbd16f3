package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

// Publisher is the subset of *redis.Client the sink needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd
}

// Sink publishes every event as a JSON envelope on a Redis channel, so other
// processes (another API instance, a bot worker) can relay it.
type Sink struct {
	l       log.Logger
	client  Publisher
	channel string
}

var _ notification.Sink = (*Sink)(nil)

// New creates a Redis sink.
func New(l log.Logger, client Publisher, channel string) *Sink {
	return &Sink{l: l, client: client, channel: channel}
}

// Publish implements notification.Sink.
func (s *Sink) Publish(ctx context.Context, event notification.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redis.Sink: marshal %s: %w", event.Name, err)
	}

	receivers, err := s.client.Publish(ctx, s.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("redis.Sink: publish %s: %w", event.Name, err)
	}
	s.l.Debugf(ctx, "redis.Sink.Publish: event=%s channel=%s receivers=%d", event.Name, s.channel, receivers)
	return nil
}
