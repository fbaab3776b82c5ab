package ports

import (
	"context"
	"errors"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrStorageUnavailable signals the datastore could not be reached.
	// Writes are transactional, so a failed operation leaves no partial state.
	ErrStorageUnavailable = errors.New("order storage unavailable")
)

// Filter selects which slice of the ledger a listing returns.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterActive  Filter = "active"
	FilterHistory Filter = "history"
)

// ParseFilter validates a raw listing filter.
func ParseFilter(raw string) (Filter, bool) {
	switch Filter(raw) {
	case FilterAll, FilterActive, FilterHistory:
		return Filter(raw), true
	case "":
		return FilterAll, true
	default:
		return "", false
	}
}

// Repository persists the append-only order ledger.
type Repository interface {
	// Create stores the order and all of its items atomically and
	// assigns the order id.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// AdvanceStatus performs an atomic check-current-status-then-set so
	// two racing transitions on the same order cannot both win. It
	// returns ErrNotFound for unknown orders and domain.ErrInvalidTransition
	// when the stored status no longer matches from.
	AdvanceStatus(ctx context.Context, id int64, from, to domain.Status) error
	// List returns orders matching the filter in creation order (oldest first).
	List(ctx context.Context, filter Filter) ([]*domain.Order, error)
}
