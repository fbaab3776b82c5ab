package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps the single restaurant profile in memory.
type Repository struct {
	mu      sync.RWMutex
	profile *domain.Profile
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Get(_ context.Context) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, ports.ErrNotFound
	}
	return r.profile.Clone(), nil
}

func (r *Repository) Save(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile.Clone()
	return r.profile.Clone(), nil
}
