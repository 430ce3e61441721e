package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/bills/{billCode})
	GetBill(ctx echo.Context, billCode string) error
	// (PUT /api/v1/bills/{billCode}/cancel)
	CancelBill(ctx echo.Context, billCode string) error
	// (PUT /api/v1/bills/{billCode}/confirm)
	ConfirmBill(ctx echo.Context, billCode string) error
	// (PUT /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId int64) error
	// (PUT /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId int64) error
	// (GET /api/v1/orders/{orderId}/items)
	GetOrderItems(ctx echo.Context, orderId int64) error
	// (GET /api/v1/orders/today)
	GetTodayOrders(ctx echo.Context) error
	// (GET /api/v1/orders/today/count)
	GetTodayOrderCount(ctx echo.Context) error
	// (GET /api/v1/orders/today/revenue)
	GetTodayRevenue(ctx echo.Context) error
	// (GET /api/v1/receipts)
	GetReceipts(ctx echo.Context) error
	// (GET /api/v1/events)
	StreamEvents(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetBill(ctx echo.Context) error {
	billCode, err := bindBillCode(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetBill(ctx, billCode)
}

func (w *ServerInterfaceWrapper) CancelBill(ctx echo.Context) error {
	billCode, err := bindBillCode(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelBill(ctx, billCode)
}

func (w *ServerInterfaceWrapper) ConfirmBill(ctx echo.Context) error {
	billCode, err := bindBillCode(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmBill(ctx, billCode)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrderItems(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderItems(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetTodayOrders(ctx echo.Context) error {
	return w.Handler.GetTodayOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetTodayOrderCount(ctx echo.Context) error {
	return w.Handler.GetTodayOrderCount(ctx)
}

func (w *ServerInterfaceWrapper) GetTodayRevenue(ctx echo.Context) error {
	return w.Handler.GetTodayRevenue(ctx)
}

func (w *ServerInterfaceWrapper) GetReceipts(ctx echo.Context) error {
	return w.Handler.GetReceipts(ctx)
}

func (w *ServerInterfaceWrapper) StreamEvents(ctx echo.Context) error {
	return w.Handler.StreamEvents(ctx)
}

func bindBillCode(ctx echo.Context) (string, error) {
	var billCode string
	err := runtime.BindStyledParameterWithOptions("simple", "billCode", ctx.Param("billCode"), &billCode,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter billCode: %s", err))
	}
	return billCode, nil
}

func bindOrderId(ctx echo.Context) (int64, error) {
	var orderId int64
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/bills/:billCode", wrapper.GetBill)
	router.PUT(baseURL+"/api/v1/bills/:billCode/cancel", wrapper.CancelBill)
	router.PUT(baseURL+"/api/v1/bills/:billCode/confirm", wrapper.ConfirmBill)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.PUT(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/items", wrapper.GetOrderItems)
	router.GET(baseURL+"/api/v1/orders/today", wrapper.GetTodayOrders)
	router.GET(baseURL+"/api/v1/orders/today/count", wrapper.GetTodayOrderCount)
	router.GET(baseURL+"/api/v1/orders/today/revenue", wrapper.GetTodayRevenue)
	router.GET(baseURL+"/api/v1/receipts", wrapper.GetReceipts)
	router.GET(baseURL+"/api/v1/events", wrapper.StreamEvents)
}
