package ports

import (
	"context"

	types "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
)

// Service exposes restaurant profile use cases to adapters.
type Service interface {
	// Get returns the profile, seeding the default on first read.
	Get(ctx context.Context) (*domain.Profile, error)
	// Update applies a partial mutation to the profile.
	Update(ctx context.Context, input types.ProfileMutationInput) (*domain.Profile, error)
}
