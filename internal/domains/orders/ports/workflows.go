package ports

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
)

// WorkflowOrchestrator starts the durable order placement flow. The
// inline implementation falls back to calling the service directly.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
}
