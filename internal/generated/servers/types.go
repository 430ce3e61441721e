// Package servers holds the HTTP contract of the service: the OpenAPI
// document, its request and response types, and the echo routing that binds
// path parameters before calling a ServerInterface.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BulkAction values of Bill.
const (
	BulkActionNone       = "none"
	BulkActionCancelAll  = "cancel_all"
	BulkActionConfirmAll = "confirm_all"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type OrderStatus struct {
	OrderId         int64               `json:"order_id"`
	Status          string              `json:"status"`
	ArchivedOrderId *openapi_types.UUID `json:"archived_order_id,omitempty"`
}

type BillActionResult struct {
	BillCode string  `json:"bill_code"`
	OrderIds []int64 `json:"order_ids"`
}

type Item struct {
	Id             int64  `json:"id"`
	MenuId         int64  `json:"menu_id"`
	MenuName       string `json:"menu_name"`
	Quantity       int    `json:"quantity"`
	Price          string `json:"price"`
	Subtotal       string `json:"subtotal"`
	Note           string `json:"note,omitempty"`
	SpecialRequest string `json:"special_request,omitempty"`
}

type BillOrder struct {
	Id          int64     `json:"id"`
	Status      string    `json:"status"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
	Cancellable bool      `json:"cancellable"`
	Items       []Item    `json:"items"`
}

type Bill struct {
	Code        string      `json:"code"`
	TableNumber int         `json:"table_number"`
	CreatedAt   time.Time   `json:"created_at"`
	Total       string      `json:"total"`
	BulkAction  string      `json:"bulk_action"`
	Orders      []BillOrder `json:"orders"`
}

type TodayOrder struct {
	Id          int64     `json:"id"`
	BillCode    string    `json:"bill_code"`
	TableNumber int       `json:"table_number"`
	Status      string    `json:"status"`
	Total       string    `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderCount struct {
	Count int64 `json:"count"`
}

type Revenue struct {
	TotalRevenue string `json:"total_revenue"`
	TotalOrders  int64  `json:"total_orders"`
	Date         string `json:"date"`
}

type ArchivedItem struct {
	MenuId         int64  `json:"menu_id"`
	MenuName       string `json:"menu_name"`
	Quantity       int    `json:"quantity"`
	Price          string `json:"price"`
	Subtotal       string `json:"subtotal"`
	Note           string `json:"note,omitempty"`
	SpecialRequest string `json:"special_request,omitempty"`
}

type ArchivedOrder struct {
	Id            openapi_types.UUID `json:"id"`
	SourceOrderId int64              `json:"source_order_id"`
	TableNumber   int                `json:"table_number"`
	Status        string             `json:"status"`
	Total         string             `json:"total"`
	OrderedAt     time.Time          `json:"ordered_at"`
	ArchivedAt    time.Time          `json:"archived_at"`
	Items         []ArchivedItem     `json:"items"`
}

type Receipt struct {
	Code     string          `json:"code"`
	IssuedAt time.Time       `json:"issued_at"`
	Orders   []ArchivedOrder `json:"orders"`
}

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus.
type ChangeOrderStatusJSONRequestBody = StatusUpdate
