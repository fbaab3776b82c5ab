package domain

import "time"

// Event is the base interface for all order domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// OrderPlaced is raised when a customer submits a new order.
type OrderPlaced struct {
	BaseEvent
	OrderID     int64
	TableNumber int
	Total       string
	Items       int
}

// EventName returns the event type identifier.
func (e OrderPlaced) EventName() string {
	return "orders.order.placed"
}

// OrderStatusChanged is raised on every successful lifecycle transition.
type OrderStatusChanged struct {
	BaseEvent
	OrderID    int64
	FromStatus Status
	ToStatus   Status
}

// EventName returns the event type identifier.
func (e OrderStatusChanged) EventName() string {
	return "orders.order.status_changed"
}
