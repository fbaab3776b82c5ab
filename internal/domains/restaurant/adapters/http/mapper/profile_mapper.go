package mapper

import (
	restauranttypes "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
)

// MutationProfile captures inbound profile edits while preserving field
// presence.
type MutationProfile struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	OpeningHours *string `json:"openingHours,omitempty"`
	Description  *string `json:"description,omitempty"`
	Quote        *string `json:"quote,omitempty"`
}

// Profile is the HTTP representation of the restaurant profile.
type Profile struct {
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	Description  string `json:"description,omitempty"`
	Quote        string `json:"quote,omitempty"`
}

// ToMutationInput converts a mutation payload into an application input.
func ToMutationInput(model MutationProfile) restauranttypes.ProfileMutationInput {
	input := restauranttypes.ProfileMutationInput{}
	if model.Name != nil {
		name := *model.Name
		input.Name = &name
	}
	if model.Address != nil {
		address := *model.Address
		input.Address = &address
	}
	if model.Phone != nil {
		phone := *model.Phone
		input.Phone = &phone
	}
	if model.Email != nil {
		email := *model.Email
		input.Email = &email
	}
	if model.OpeningHours != nil {
		hours := *model.OpeningHours
		input.OpeningHours = &hours
	}
	if model.Description != nil {
		description := *model.Description
		input.Description = &description
	}
	if model.Quote != nil {
		quote := *model.Quote
		input.Quote = &quote
	}
	return input
}

// FromDomainProfile maps the profile aggregate into its transport form.
func FromDomainProfile(p *domain.Profile) Profile {
	return Profile{
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		OpeningHours: p.OpeningHours,
		Description:  p.Description,
		Quote:        p.Quote,
	}
}
