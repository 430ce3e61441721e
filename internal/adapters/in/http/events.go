package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const keepAliveInterval = 15 * time.Second

// EventStream delivers the JSON envelopes published on the realtime channel.
type EventStream interface {
	Subscribe(ctx context.Context) (<-chan string, error)
}

// StreamEvents handles GET /api/v1/events as server-sent events. Each message
// is written as one "data:" frame; a comment line keeps idle proxies from
// closing the connection. Nothing is replayed on reconnect. Streams end when
// the client leaves or CloseStreams is called.
func (s *Server) StreamEvents(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	messages, err := s.events.Subscribe(reqCtx)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-s.closing:
			return nil
		case <-ticker.C:
			if _, err = fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if _, err = fmt.Fprintf(res, "data: %s\n\n", msg); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// CloseStreams ends every open event stream. http.Server.Shutdown does not
// cancel request contexts, so the router registers this as a shutdown hook.
func (s *Server) CloseStreams() {
	s.closeOnce.Do(func() {
		close(s.closing)
	})
}
