package ports

import (
	"context"
	"errors"

	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
)

// ErrNotFound indicates no profile has been stored yet.
var ErrNotFound = errors.New("restaurant profile not found")

// Repository stores the single restaurant profile.
type Repository interface {
	// Get returns the stored profile or ErrNotFound.
	Get(ctx context.Context) (*domain.Profile, error)
	// Save replaces the stored profile.
	Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
