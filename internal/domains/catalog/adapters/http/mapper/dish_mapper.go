package mapper

import (
	catalogtypes "github.com/menulink/restaurant-api-server/internal/domains/catalog/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
)

// MutationDish captures inbound create/update payloads while preserving
// field presence.
type MutationDish struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *string  `json:"price,omitempty"`
	Category         *string  `json:"category,omitempty"`
	ImageURL         *string  `json:"imageUrl,omitempty"`
	ARModelURL       *string  `json:"arModelUrl,omitempty"`
	Available        *bool    `json:"available,omitempty"`
	SuggestedDishIDs *[]int64 `json:"suggestedDishIds,omitempty"`
}

// Dish is the HTTP representation of a catalog entry.
type Dish struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	Price            string  `json:"price"`
	Category         string  `json:"category"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	ARModelURL       string  `json:"arModelUrl,omitempty"`
	Available        bool    `json:"available"`
	SuggestedDishIDs []int64 `json:"suggestedDishIds,omitempty"`
}

// ToMutationInput converts a mutation payload into an application input
// while preserving field presence.
func ToMutationInput(model MutationDish) catalogtypes.DishMutationInput {
	input := catalogtypes.DishMutationInput{}
	if model.Name != nil {
		name := *model.Name
		input.Name = &name
	}
	if model.Description != nil {
		description := *model.Description
		input.Description = &description
	}
	if model.Price != nil {
		price := *model.Price
		input.Price = &price
	}
	if model.Category != nil {
		category := *model.Category
		input.Category = &category
	}
	if model.ImageURL != nil {
		imageURL := *model.ImageURL
		input.ImageURL = &imageURL
	}
	if model.ARModelURL != nil {
		arModelURL := *model.ARModelURL
		input.ARModelURL = &arModelURL
	}
	if model.Available != nil {
		available := *model.Available
		input.Available = &available
	}
	if model.SuggestedDishIDs != nil {
		ids := append([]int64{}, (*model.SuggestedDishIDs)...)
		input.SuggestedDishIDs = &ids
	}
	return input
}

// FromDomainDish maps a catalog aggregate into its transport form.
func FromDomainDish(d *domain.Dish) Dish {
	return Dish{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Price:            d.Price.StringFixed(2),
		Category:         string(d.Category),
		ImageURL:         d.ImageURL,
		ARModelURL:       d.ARModelURL,
		Available:        d.Available,
		SuggestedDishIDs: append([]int64{}, d.SuggestedDishIDs...),
	}
}

// FromDomainDishList maps a slice of catalog aggregates to transport dishes.
func FromDomainDishList(list []*domain.Dish) []Dish {
	result := make([]Dish, 0, len(list))
	for _, dish := range list {
		result = append(result, FromDomainDish(dish))
	}
	return result
}
