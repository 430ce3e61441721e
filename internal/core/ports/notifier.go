package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Realtime event names. They are part of the public contract.
const (
	EventOrderStatusUpdated  = "order_status_updated"
	EventOrderCountUpdated   = "order_count_updated"
	EventTodayRevenueUpdated = "today_revenue_updated"
)

// Event is one realtime notification. Payload must be JSON serialisable.
type Event struct {
	Name      string    `json:"event"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emitted_at"`
}

// Notifier broadcasts events to every subscribed viewer. Delivery is best
// effort: there is no acknowledgement, ordering or replay.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

type OrderStatusPayload struct {
	OrderID  int64  `json:"order_id"`
	Status   string `json:"status"`
	BillCode string `json:"bill_code"`
}

type OrderCountPayload struct {
	Count int64 `json:"count"`
}

type TodayRevenuePayload struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
	Date         string          `json:"date"`
}
