package ports

import (
	"context"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
)

// EventPublisher pushes order domain events to interested consumers
// (kitchen displays, notification fan-out). Publishing is best effort;
// the ledger never fails an operation because an event could not leave.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close(ctx context.Context) error
}
