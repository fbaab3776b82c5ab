package application

import (
	"context"
	"errors"

	types "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"
)

// Service orchestrates restaurant profile use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the restaurant service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored profile, seeding the default one on first read.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	return s.repo.Save(ctx, domain.DefaultProfile())
}

// Update applies a partial mutation and persists the result.
func (s *Service) Update(ctx context.Context, input types.ProfileMutationInput) (*domain.Profile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	applyMutation(profile, input)
	if err := profile.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, profile)
}

func applyMutation(target *domain.Profile, input types.ProfileMutationInput) {
	if input.Name != nil {
		target.Name = *input.Name
	}
	if input.Address != nil {
		target.Address = *input.Address
	}
	if input.Phone != nil {
		target.Phone = *input.Phone
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.OpeningHours != nil {
		target.OpeningHours = *input.OpeningHours
	}
	if input.Description != nil {
		target.Description = *input.Description
	}
	if input.Quote != nil {
		target.Quote = *input.Quote
	}
}

var _ ports.Service = (*Service)(nil)
