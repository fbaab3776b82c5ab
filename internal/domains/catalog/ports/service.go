package ports

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/catalog/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	AddDish(ctx context.Context, input types.DishMutationInput) (*domain.Dish, error)
	UpdateDish(ctx context.Context, id int64, input types.DishMutationInput) (*domain.Dish, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	// Menu lists only available dishes; List returns everything for managers.
	Menu(ctx context.Context) ([]*domain.Dish, error)
	List(ctx context.Context) ([]*domain.Dish, error)
	// Suggestions resolves a dish's suggested ids to available dishes.
	Suggestions(ctx context.Context, id int64) ([]*domain.Dish, error)
}
