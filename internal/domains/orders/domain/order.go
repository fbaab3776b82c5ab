package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order lifecycle states in their mandatory progression.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
	StatusPaid      Status = "paid"
)

var (
	ErrInvalidTableNumber = errors.New("table number must be greater than zero")
	ErrEmptyItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be greater than zero")
	ErrInvalidUnitPrice   = errors.New("item unit price must not be negative")
	ErrUnknownStatus      = errors.New("order status is unknown")
	ErrInvalidTransition  = errors.New("order status transition is not allowed")
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !isValidStatus(status) {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// Next returns the immediate successor in the lifecycle. The second
// return is false for the terminal state.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusDelivered, true
	case StatusDelivered:
		return StatusPaid, true
	default:
		return "", false
	}
}

// Terminal reports whether the status closes the order for good.
func (s Status) Terminal() bool {
	return s == StatusPaid
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusPreparing, StatusDelivered, StatusPaid:
		return true
	default:
		return false
	}
}

// Item is one line of an order. The dish name and unit price are
// snapshots taken at placement time; catalog changes never rewrite them.
type Item struct {
	DishID    int64
	DishName  string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// LineTotal multiplies the frozen unit price by the quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt32(i.Quantity))
}

// Order models the table order aggregate owned by the ledger.
type Order struct {
	ID              int64
	TableNumber     int
	CustomerID      *int64
	Status          Status
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
	Items           []Item
}

// NewOrder validates and constructs a pending Order aggregate.
// Customer reference is optional; anonymous table orders are permitted.
func NewOrder(tableNumber int, customerID *int64, items []Item) (*Order, error) {
	if tableNumber <= 0 {
		return nil, ErrInvalidTableNumber
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return nil, ErrInvalidUnitPrice
		}
	}
	order := &Order{
		TableNumber: tableNumber,
		Status:      StatusPending,
		Items:       append([]Item{}, items...),
	}
	if customerID != nil {
		id := *customerID
		order.CustomerID = &id
	}
	return order, nil
}

// Total derives the order amount from its line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Advance moves the order to the requested status, which must be the
// immediate successor of the current one. Paid orders never move again.
func (o *Order) Advance(next Status) error {
	if !isValidStatus(next) {
		return ErrUnknownStatus
	}
	successor, ok := o.Status.Next()
	if !ok || successor != next {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

// Active reports whether the order still needs attention from staff.
func (o *Order) Active() bool {
	return !o.Status.Terminal()
}

// Clone returns a deep copy so repositories can hand out safe values.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = append([]Item{}, o.Items...)
	if o.CustomerID != nil {
		id := *o.CustomerID
		clone.CustomerID = &id
	}
	return &clone
}
