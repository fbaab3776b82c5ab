package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDishNotFound is returned by the catalog port for unknown dish ids.
var ErrDishNotFound = errors.New("dish not found in catalog")

// CatalogDish is the read-only view of a dish the ledger needs at
// placement time.
type CatalogDish struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Available bool
}

// Catalog is the ledger's narrow view of the dish catalog.
type Catalog interface {
	GetDish(ctx context.Context, id int64) (CatalogDish, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
}
