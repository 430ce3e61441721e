package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Stream subscribes viewers to the realtime channel.
type Stream struct {
	client  *redis.Client
	channel string
}

func NewStream(client *redis.Client, channel string) (*Stream, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if channel == "" {
		return nil, ErrChannelIsRequired
	}
	return &Stream{client: client, channel: channel}, nil
}

// Subscribe returns the raw JSON envelopes published after the subscription
// is confirmed. The channel is closed once ctx is done.
func (s *Stream) Subscribe(ctx context.Context) (<-chan string, error) {
	pubsub := s.client.Subscribe(ctx, s.channel)

	// The first reply confirms the subscription; messages sent before it are
	// not delivered.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer func() {
			_ = pubsub.Close()
		}()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Ping checks the connection, used by the health endpoint.
func (s *Stream) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
