package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	DishID   int64
	Quantity int32
}

// PlaceOrderInput carries everything needed to open an order for a table.
type PlaceOrderInput struct {
	TableNumber int
	CustomerID  *int64
	Items       []OrderItemInput
	// IdempotencyKey lets retried placements land on the same workflow.
	IdempotencyKey string
}

// AdvanceStatusInput requests a single lifecycle transition.
type AdvanceStatusInput struct {
	OrderID    int64
	NextStatus string
}

// ListOrdersInput selects a ledger slice: all, active or history.
type ListOrdersInput struct {
	Filter string
}

// RestaurantDetails is the metadata printed on bills.
type RestaurantDetails struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
	Quote        string
}

// BillLine is one rendered bill row with the frozen placement prices.
type BillLine struct {
	DishName  string
	Quantity  int32
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Bill is the read-only billing projection of an order. Generating it
// never mutates the order; settling is a separate status transition.
type Bill struct {
	OrderID     int64
	TableNumber int
	PlacedAt    time.Time
	Lines       []BillLine
	Total       decimal.Decimal
	Restaurant  RestaurantDetails
}
