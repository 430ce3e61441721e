package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, command commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, command commands.CancelOrderCommand) (commands.CancelOrderResult, error)
}

type CancelBillHandler interface {
	Handle(ctx context.Context, command commands.CancelBillCommand) (commands.CancelBillResult, error)
}

type ConfirmBillHandler interface {
	Handle(ctx context.Context, command commands.ConfirmBillCommand) (commands.ConfirmBillResult, error)
}

type GetBillHandler interface {
	Handle(ctx context.Context, query queries.GetBillQuery) (queries.GetBillQueryResponse, error)
}

type GetOrderItemsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderItemsQuery) ([]queries.ItemResponse, error)
}

type GetTodayOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetTodayOrdersQuery) ([]queries.GetTodayOrdersQueryResponse, error)
}

type GetTodayOpenCountHandler interface {
	Handle(ctx context.Context, query queries.GetTodayOpenCountQuery) (int64, error)
}

type GetTodayRevenueHandler interface {
	Handle(ctx context.Context, query queries.GetTodayRevenueQuery) (queries.GetTodayRevenueQueryResponse, error)
}

type GetReceiptsHandler interface {
	Handle(ctx context.Context, query queries.GetReceiptsQuery) ([]queries.GetReceiptsQueryResponse, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	ChangeOrderStatus ChangeOrderStatusHandler
	CancelOrder       CancelOrderHandler
	CancelBill        CancelBillHandler
	ConfirmBill       ConfirmBillHandler
	GetBill           GetBillHandler
	GetOrderItems     GetOrderItemsHandler
	GetTodayOrders    GetTodayOrdersHandler
	GetTodayOpenCount GetTodayOpenCountHandler
	GetTodayRevenue   GetTodayRevenueHandler
	GetReceipts       GetReceiptsHandler
}

// Server implements servers.ServerInterface. It translates HTTP input into
// commands and queries and maps their results and errors back.
type Server struct {
	handlers Handlers
	events   EventStream
	location *time.Location
	now      func() time.Time
	errors   errorResponder

	closing   chan struct{}
	closeOnce sync.Once
}

func NewServer(
	handlers Handlers,
	events EventStream,
	location *time.Location,
	logger *slog.Logger,
	debug bool,
) *Server {
	return &Server{
		handlers: handlers,
		events:   events,
		location: location,
		now:      time.Now,
		errors:   errorResponder{logger: logger.With("component", "http_server"), debug: debug},
		closing:  make(chan struct{}),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// GetBill handles GET /api/v1/bills/{billCode}.
func (s *Server) GetBill(ctx echo.Context, billCode string) error {
	query, err := queries.NewGetBillQuery(billCode)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	b, err := s.handlers.GetBill.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	response := servers.Bill{
		Code:        b.Code,
		TableNumber: b.TableNumber,
		CreatedAt:   b.CreatedAt,
		Total:       b.Total.StringFixed(2),
		BulkAction:  string(b.BulkAction),
		Orders:      make([]servers.BillOrder, len(b.Orders)),
	}
	for i, o := range b.Orders {
		response.Orders[i] = servers.BillOrder{
			Id:          o.ID,
			Status:      o.Status,
			Total:       o.Total.StringFixed(2),
			CreatedAt:   o.CreatedAt,
			Cancellable: o.Cancellable,
			Items:       toItems(o.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelBill handles PUT /api/v1/bills/{billCode}/cancel.
func (s *Server) CancelBill(ctx echo.Context, billCode string) error {
	cmd, err := commands.NewCancelBillCommand(billCode)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	result, err := s.handlers.CancelBill.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BillActionResult{
		BillCode: result.BillCode.String(),
		OrderIds: result.CancelledOrderIDs,
	})
}

// ConfirmBill handles PUT /api/v1/bills/{billCode}/confirm.
func (s *Server) ConfirmBill(ctx echo.Context, billCode string) error {
	cmd, err := commands.NewConfirmBillCommand(billCode)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	result, err := s.handlers.ConfirmBill.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BillActionResult{
		BillCode: result.BillCode.String(),
		OrderIds: result.CompletedOrderIDs,
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId int64) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderId, body.Status)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	response := servers.OrderStatus{OrderId: result.OrderID, Status: result.Status.String()}
	if result.ArchivedOrderID != nil {
		archivedID := openapi_types.UUID(result.ArchivedOrderID.Bytes())
		response.ArchivedOrderId = &archivedID
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId int64) error {
	cmd, err := commands.NewCancelOrderCommand(orderId)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	result, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{OrderId: result.OrderID, Status: result.Status.String()})
}

// GetOrderItems handles GET /api/v1/orders/{orderId}/items.
func (s *Server) GetOrderItems(ctx echo.Context, orderId int64) error {
	query, err := queries.NewGetOrderItemsQuery(orderId)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	items, err := s.handlers.GetOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toItems(items))
}

// GetTodayOrders handles GET /api/v1/orders/today.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	day, err := s.today()
	if err != nil {
		return s.errors.respond(ctx, err)
	}
	query, err := queries.NewGetTodayOrdersQuery(day)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	orders, err := s.handlers.GetTodayOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	response := make([]servers.TodayOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.TodayOrder{
			Id:          o.ID,
			BillCode:    o.BillCode,
			TableNumber: o.TableNumber,
			Status:      o.Status,
			Total:       o.Total.StringFixed(2),
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTodayOrderCount handles GET /api/v1/orders/today/count.
func (s *Server) GetTodayOrderCount(ctx echo.Context) error {
	day, err := s.today()
	if err != nil {
		return s.errors.respond(ctx, err)
	}
	query, err := queries.NewGetTodayOpenCountQuery(day)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	count, err := s.handlers.GetTodayOpenCount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderCount{Count: count})
}

// GetTodayRevenue handles GET /api/v1/orders/today/revenue.
func (s *Server) GetTodayRevenue(ctx echo.Context) error {
	day, err := s.today()
	if err != nil {
		return s.errors.respond(ctx, err)
	}
	query, err := queries.NewGetTodayRevenueQuery(day)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	revenue, err := s.handlers.GetTodayRevenue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Revenue{
		TotalRevenue: revenue.TotalRevenue.StringFixed(2),
		TotalOrders:  revenue.TotalOrders,
		Date:         revenue.Date,
	})
}

// GetReceipts handles GET /api/v1/receipts.
func (s *Server) GetReceipts(ctx echo.Context) error {
	receipts, err := s.handlers.GetReceipts.Handle(ctx.Request().Context(), queries.NewGetReceiptsQuery())
	if err != nil {
		return s.errors.respond(ctx, err)
	}

	response := make([]servers.Receipt, len(receipts))
	for i, r := range receipts {
		orders := make([]servers.ArchivedOrder, len(r.Orders))
		for j, o := range r.Orders {
			id, parseErr := kernel.UUIDFromString(o.ID)
			if parseErr != nil {
				return s.errors.respond(ctx, parseErr)
			}

			items := make([]servers.ArchivedItem, len(o.Items))
			for k, item := range o.Items {
				items[k] = servers.ArchivedItem{
					MenuId:         item.MenuID,
					MenuName:       item.MenuName,
					Quantity:       item.Quantity,
					Price:          item.Price.StringFixed(2),
					Subtotal:       item.Subtotal.StringFixed(2),
					Note:           item.Note,
					SpecialRequest: item.SpecialRequest,
				}
			}

			orders[j] = servers.ArchivedOrder{
				Id:            id.Bytes(),
				SourceOrderId: o.SourceOrderID,
				TableNumber:   o.TableNumber,
				Status:        o.Status,
				Total:         o.Total.StringFixed(2),
				OrderedAt:     o.OrderedAt,
				ArchivedAt:    o.ArchivedAt,
				Items:         items,
			}
		}

		response[i] = servers.Receipt{Code: r.Code, IssuedAt: r.IssuedAt, Orders: orders}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) today() (kernel.BusinessDay, error) {
	return kernel.BusinessDayOf(s.now(), s.location)
}

func toItems(items []queries.ItemResponse) []servers.Item {
	response := make([]servers.Item, len(items))
	for i, item := range items {
		response[i] = servers.Item{
			Id:             item.ID,
			MenuId:         item.MenuID,
			MenuName:       item.MenuName,
			Quantity:       item.Quantity,
			Price:          item.Price.StringFixed(2),
			Subtotal:       item.Subtotal.StringFixed(2),
			Note:           item.Note,
			SpecialRequest: item.SpecialRequest,
		}
	}
	return response
}
