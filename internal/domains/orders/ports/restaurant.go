package ports

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
)

// RestaurantInfo supplies the metadata passthrough for bill rendering.
type RestaurantInfo interface {
	Current(ctx context.Context) (types.RestaurantDetails, error)
}
