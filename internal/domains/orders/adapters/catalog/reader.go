package catalog

import (
	"context"
	"errors"

	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

var _ ports.Catalog = (*Reader)(nil)

// Reader adapts the catalog bounded context to the ledger's narrow
// read-only port.
type Reader struct {
	repo catalogports.Repository
}

// NewReader wraps a catalog repository for ledger lookups.
func NewReader(repo catalogports.Repository) *Reader {
	return &Reader{repo: repo}
}

// GetDish resolves a dish id to the placement-time snapshot view.
func (r *Reader) GetDish(ctx context.Context, id int64) (ports.CatalogDish, error) {
	dish, err := r.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return ports.CatalogDish{}, ports.ErrDishNotFound
		}
		return ports.CatalogDish{}, err
	}
	return ports.CatalogDish{
		ID:        dish.ID,
		Name:      dish.Name,
		Price:     dish.Price,
		Available: dish.Available,
	}, nil
}

// IsAvailable reports whether the dish can currently be ordered.
func (r *Reader) IsAvailable(ctx context.Context, id int64) (bool, error) {
	dish, err := r.GetDish(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrDishNotFound) {
			return false, nil
		}
		return false, err
	}
	return dish.Available, nil
}
