package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"servigo/models"
	"servigo/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ListingNotifier is the change-notification channel for the listings store.
type ListingNotifier interface {
	// Publish emits a change event to all subscribers.
	Publish(ctx context.Context, event models.ListingEvent) error
	// Subscribe returns a channel of change events; it is closed when ctx
	// is canceled.
	Subscribe(ctx context.Context) (<-chan models.ListingEvent, error)
}

// RedisNotifier implements ListingNotifier over a Redis pub/sub channel.
type RedisNotifier struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewRedisNotifier creates a ListingNotifier backed by the given Redis client.
func NewRedisNotifier(client *redis.Client, logger *zap.Logger) ListingNotifier {
	return &RedisNotifier{Client: client, Logger: logger}
}

func (n *RedisNotifier) Publish(ctx context.Context, event models.ListingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notifier: failed to marshal listing event: %w", err)
	}
	if err := n.Client.Publish(ctx, utils.ListingsChannel, payload).Err(); err != nil {
		return fmt.Errorf("notifier: failed to publish listing event: %w", err)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan models.ListingEvent, error) {
	sub := n.Client.Subscribe(ctx, utils.ListingsChannel)
	// Force the subscription to be established before returning.
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("notifier: failed to subscribe to %s: %w", utils.ListingsChannel, err)
	}

	events := make(chan models.ListingEvent)
	go func() {
		defer close(events)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var event models.ListingEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					n.Logger.Warn("notifier: dropping malformed listing event", zap.Error(err))
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
