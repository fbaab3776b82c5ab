package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	types "github.com/menulink/restaurant-api-server/internal/domains/catalog/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

// Service orchestrates the catalog bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// AddDish persists a new dish aggregate.
func (s *Service) AddDish(ctx context.Context, input types.DishMutationInput) (*domain.Dish, error) {
	if input.Name == nil {
		return nil, mapError(domain.ErrEmptyName)
	}
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, mapError(err)
	}
	category := string(domain.CategorySpecial)
	if input.Category != nil {
		category = *input.Category
	}
	parsed, err := domain.ParseCategory(category)
	if err != nil {
		return nil, mapError(err)
	}
	dish, err := domain.NewDish(0, *input.Name, price, parsed)
	if err != nil {
		return nil, mapError(err)
	}
	if err := applyPartialMutation(dish, types.DishMutationInput{
		Description:      input.Description,
		ImageURL:         input.ImageURL,
		ARModelURL:       input.ARModelURL,
		Available:        input.Available,
		SuggestedDishIDs: input.SuggestedDishIDs,
	}); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, dish)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateDish applies a partial mutation to an existing dish.
func (s *Service) UpdateDish(ctx context.Context, id int64, input types.DishMutationInput) (*domain.Dish, error) {
	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPartialMutation(dish, input); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, dish)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetByID loads a single dish aggregate.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	return s.repo.GetByID(ctx, id)
}

// Menu lists the dishes customers can currently order.
func (s *Service) Menu(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.List(ctx, true)
}

// List returns the whole catalog for manager use.
func (s *Service) List(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.List(ctx, false)
}

// Suggestions resolves a dish's suggested ids, keeping their stored
// order and dropping unknown or unavailable entries.
func (s *Service) Suggestions(ctx context.Context, id int64) ([]*domain.Dish, error) {
	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	suggestions := make([]*domain.Dish, 0, len(dish.SuggestedDishIDs))
	for _, suggestedID := range dish.SuggestedDishIDs {
		suggested, err := s.repo.GetByID(ctx, suggestedID)
		if err != nil {
			continue
		}
		if suggested.Available {
			suggestions = append(suggestions, suggested)
		}
	}
	return suggestions, nil
}

func applyPartialMutation(target *domain.Dish, input types.DishMutationInput) error {
	if input.Name != nil {
		if err := target.Rename(*input.Name); err != nil {
			return err
		}
	}
	if input.Price != nil {
		price, err := parsePrice(input.Price)
		if err != nil {
			return err
		}
		if err := target.Reprice(price); err != nil {
			return err
		}
	}
	if input.Category != nil {
		category, err := domain.ParseCategory(*input.Category)
		if err != nil {
			return err
		}
		if err := target.Recategorize(category); err != nil {
			return err
		}
	}
	if input.Description != nil {
		target.Describe(*input.Description)
	}
	if input.ImageURL != nil || input.ARModelURL != nil {
		imageURL := target.ImageURL
		arModelURL := target.ARModelURL
		if input.ImageURL != nil {
			imageURL = *input.ImageURL
		}
		if input.ARModelURL != nil {
			arModelURL = *input.ARModelURL
		}
		target.UpdateAssets(imageURL, arModelURL)
	}
	if input.Available != nil {
		target.SetAvailability(*input.Available)
	}
	if input.SuggestedDishIDs != nil {
		target.ReplaceSuggestions(*input.SuggestedDishIDs)
	}
	return nil
}

func parsePrice(raw *string) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, *raw)
	}
	return price, nil
}

var _ ports.Service = (*Service)(nil)
