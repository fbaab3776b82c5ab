package restaurant

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
	restaurantports "github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"
)

var _ ports.RestaurantInfo = (*Info)(nil)

// Info adapts the restaurant bounded context to the ledger's bill
// metadata port.
type Info struct {
	repo restaurantports.Repository
}

// NewInfo wraps a restaurant repository for bill passthrough reads.
func NewInfo(repo restaurantports.Repository) *Info {
	return &Info{repo: repo}
}

// Current returns the restaurant profile as bill metadata.
func (i *Info) Current(ctx context.Context) (types.RestaurantDetails, error) {
	info, err := i.repo.Get(ctx)
	if err != nil {
		return types.RestaurantDetails{}, err
	}
	return types.RestaurantDetails{
		Name:         info.Name,
		Address:      info.Address,
		Phone:        info.Phone,
		Email:        info.Email,
		OpeningHours: info.OpeningHours,
		Quote:        info.Quote,
	}, nil
}
