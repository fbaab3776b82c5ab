package ports

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
)

// Service exposes the order ledger use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, input types.AdvanceStatusInput) (*domain.Order, error)
	GenerateBill(ctx context.Context, orderID int64) (*types.Bill, error)
	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context, input types.ListOrdersInput) ([]*domain.Order, error)
}
