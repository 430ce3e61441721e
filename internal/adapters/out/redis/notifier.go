// Package redis carries realtime events over one Redis pub/sub channel.
// Every process publishes to and streams from the same channel, so viewers
// connected to any instance see every event.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "tableorder.events"

var ErrChannelIsRequired = errors.New("redis channel name is required")

// Notifier implements ports.Notifier with PUBLISH.
type Notifier struct {
	client  *redis.Client
	channel string
}

func NewNotifier(client *redis.Client, channel string) (*Notifier, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if channel == "" {
		return nil, ErrChannelIsRequired
	}
	return &Notifier{client: client, channel: channel}, nil
}

func (n *Notifier) Publish(ctx context.Context, event ports.Event) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Name, err)
	}

	if err = n.client.Publish(ctx, n.channel, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Name, err)
	}

	return nil
}
