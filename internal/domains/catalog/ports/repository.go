package ports

import (
	"context"
	"errors"

	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("dish not found")

// Repository persists catalog dishes.
type Repository interface {
	Save(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	GetByID(ctx context.Context, id int64) (*domain.Dish, error)
	// List returns all dishes; onlyAvailable restricts to the live menu.
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Dish, error)
}
