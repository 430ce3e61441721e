// Package realtime fans committed status changes out to every viewer.
//
// For each batch of status changes the Broadcaster publishes one
// order_status_updated per order, then order_count_updated if any order
// reached a terminal status and today_revenue_updated if any order completed.
// Counters are recomputed from storage, never derived from the events.
//
// Delivery is best effort. A viewer that reconnects must re-fetch the state it
// displays; nothing is buffered for late joiners.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/ports"
)

const DefaultTimeout = 5 * time.Second

type OpenCountReader interface {
	Handle(ctx context.Context, query queries.GetTodayOpenCountQuery) (int64, error)
}

type RevenueReader interface {
	Handle(ctx context.Context, query queries.GetTodayRevenueQuery) (queries.GetTodayRevenueQueryResponse, error)
}

// Broadcaster implements commands.EventPublisher. Publish returns at once;
// the notifier is called from a background goroutine.
type Broadcaster struct {
	notifier ports.Notifier
	counts   OpenCountReader
	revenue  RevenueReader
	location *time.Location
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger

	wg sync.WaitGroup
}

type Option func(*Broadcaster)

// WithTimeout bounds one broadcast, queries included.
func WithTimeout(timeout time.Duration) Option {
	return func(b *Broadcaster) {
		if timeout > 0 {
			b.timeout = timeout
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Broadcaster) {
		b.now = now
	}
}

func NewBroadcaster(
	notifier ports.Notifier,
	counts OpenCountReader,
	revenue RevenueReader,
	location *time.Location,
	logger *slog.Logger,
	opts ...Option,
) *Broadcaster {
	b := &Broadcaster{
		notifier: notifier,
		counts:   counts,
		revenue:  revenue,
		location: location,
		timeout:  DefaultTimeout,
		now:      time.Now,
		logger:   logger.With("component", "realtime_broadcaster"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Broadcaster) Publish(events ...order.StatusChanged) {
	if len(events) == 0 {
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		b.broadcast(ctx, events)
	}()
}

// Wait blocks until every broadcast started so far has finished.
func (b *Broadcaster) Wait() {
	b.wg.Wait()
}

func (b *Broadcaster) broadcast(ctx context.Context, events []order.StatusChanged) {
	var terminal, completed bool

	for _, e := range events {
		b.send(ctx, ports.EventOrderStatusUpdated, ports.OrderStatusPayload{
			OrderID:  e.OrderID,
			Status:   e.Status.String(),
			BillCode: e.BillCode.String(),
		})

		terminal = terminal || e.Status.IsTerminal()
		completed = completed || e.Status == order.Completed
	}

	if !terminal {
		return
	}

	day, err := kernel.BusinessDayOf(b.now(), b.location)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to resolve business day", "error", err)
		return
	}

	b.publishCount(ctx, day)
	if completed {
		b.publishRevenue(ctx, day)
	}
}

func (b *Broadcaster) publishCount(ctx context.Context, day kernel.BusinessDay) {
	query, err := queries.NewGetTodayOpenCountQuery(day)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to build open count query", "error", err)
		return
	}

	count, err := b.counts.Handle(ctx, query)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to recompute open order count", "error", err)
		return
	}

	b.send(ctx, ports.EventOrderCountUpdated, ports.OrderCountPayload{Count: count})
}

func (b *Broadcaster) publishRevenue(ctx context.Context, day kernel.BusinessDay) {
	query, err := queries.NewGetTodayRevenueQuery(day)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to build revenue query", "error", err)
		return
	}

	revenue, err := b.revenue.Handle(ctx, query)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to recompute today's revenue", "error", err)
		return
	}

	b.send(ctx, ports.EventTodayRevenueUpdated, ports.TodayRevenuePayload{
		TotalRevenue: revenue.TotalRevenue,
		TotalOrders:  revenue.TotalOrders,
		Date:         revenue.Date,
	})
}

func (b *Broadcaster) send(ctx context.Context, name string, payload any) {
	event := ports.Event{Name: name, Payload: payload, EmittedAt: b.now().UTC()}
	if err := b.notifier.Publish(ctx, event); err != nil {
		b.logger.WarnContext(ctx, "Realtime notification dropped", "event", name, "error", err)
	}
}
