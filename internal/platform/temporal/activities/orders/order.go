package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/menulink/restaurant-api-server/internal/domains/orders/application"
	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

const (
	// PlaceOrderActivityName validates and persists a new order aggregate.
	PlaceOrderActivityName = "orders.activities.PlaceOrder"
	// PlaceOrderRejectedErrorType marks rejections that must not be retried.
	PlaceOrderRejectedErrorType = "OrderPlacementRejected"
)

// Activities groups activities that operate on the order ledger.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the ledger service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder stores a new order aggregate and returns it.
func (a *Activities) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "tableNumber", input.TableNumber)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "tableNumber", input.TableNumber)
	order, err := a.service.PlaceOrder(ctx, input)
	if err != nil {
		if errors.Is(err, ordersapp.ErrValidation) || errors.Is(err, ordersapp.ErrInvalidInput) {
			logger.Error("PlaceOrder activity rejected", "tableNumber", input.TableNumber, "error", err)
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), PlaceOrderRejectedErrorType, err)
		}
		logger.Error("PlaceOrder activity failed", "tableNumber", input.TableNumber, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return order, nil
}
