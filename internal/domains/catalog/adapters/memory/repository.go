package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	dishes map[int64]*domain.Dish
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{dishes: map[int64]*domain.Dish{}}
}

func (r *Repository) Save(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	clone := dish.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.dishes[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dish, ok := r.dishes[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return dish.Clone(), nil
}

func (r *Repository) List(_ context.Context, onlyAvailable bool) ([]*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Dish, 0, len(r.dishes))
	for _, dish := range r.dishes {
		if onlyAvailable && !dish.Available {
			continue
		}
		list = append(list, dish.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
