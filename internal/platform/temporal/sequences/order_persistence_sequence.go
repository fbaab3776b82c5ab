package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	orderactivities "github.com/menulink/restaurant-api-server/internal/platform/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the ordered set of activities needed to persist an order aggregate.
func RunOrderPersistenceSequence(ctx workflow.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "tableNumber", input.TableNumber)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			// Validation failures never succeed on retry.
			NonRetryableErrorTypes: []string{orderactivities.PlaceOrderRejectedErrorType},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var order domain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.PlaceOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order persistence sequence failed", "tableNumber", input.TableNumber, "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence completed", "orderId", order.ID)
	return &order, nil
}
