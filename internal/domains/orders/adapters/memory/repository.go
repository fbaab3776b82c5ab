package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order ledger adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.StatusUpdatedAt = now
	r.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) AdvanceStatus(_ context.Context, id int64, from, to domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return ports.ErrNotFound
	}
	if order.Status != from {
		return domain.ErrInvalidTransition
	}
	order.Status = to
	order.StatusUpdatedAt = time.Now().UTC()
	return nil
}

func (r *Repository) List(_ context.Context, filter ports.Filter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		switch filter {
		case ports.FilterActive:
			if !order.Active() {
				continue
			}
		case ports.FilterHistory:
			if order.Active() {
				continue
			}
		}
		list = append(list, order.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
