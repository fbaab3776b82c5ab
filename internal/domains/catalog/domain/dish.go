package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups dishes on the menu.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySides     Category = "sides"
	CategoryDrinks    Category = "drinks"
	CategoryDessert   Category = "dessert"
	CategorySpecial   Category = "special"
)

var (
	ErrEmptyName       = errors.New("dish name is required")
	ErrNegativePrice   = errors.New("dish price must not be negative")
	ErrUnknownCategory = errors.New("dish category is unknown")
)

// ParseCategory validates a raw category value.
func ParseCategory(raw string) (Category, error) {
	category := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch category {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySides, CategoryDrinks, CategoryDessert, CategorySpecial:
		return category, nil
	default:
		return "", ErrUnknownCategory
	}
}

// Dish represents one catalog entry. SuggestedDishIDs is an explicit
// ordered id list, parsed once at the boundary and never re-parsed.
type Dish struct {
	ID               int64
	Name             string
	Description      string
	Price            decimal.Decimal
	Category         Category
	ImageURL         string
	ARModelURL       string
	Available        bool
	SuggestedDishIDs []int64
}

// NewDish validates the invariants and builds a new Dish aggregate.
// Dishes start available; availability is toggled explicitly.
func NewDish(id int64, name string, price decimal.Decimal, category Category) (*Dish, error) {
	d := &Dish{ID: id, Available: true}
	if err := d.Rename(name); err != nil {
		return nil, err
	}
	if err := d.Reprice(price); err != nil {
		return nil, err
	}
	if err := d.Recategorize(category); err != nil {
		return nil, err
	}
	return d, nil
}

// Rename mutates the dish name ensuring the invariant.
func (d *Dish) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	d.Name = name
	return nil
}

// Reprice sets a new price. Existing orders keep their snapshots.
func (d *Dish) Reprice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	d.Price = price
	return nil
}

// Recategorize moves the dish to another menu section.
func (d *Dish) Recategorize(category Category) error {
	if _, err := ParseCategory(string(category)); err != nil {
		return err
	}
	d.Category = category
	return nil
}

// SetAvailability toggles whether the dish can be ordered.
func (d *Dish) SetAvailability(available bool) {
	d.Available = available
}

// Describe replaces the free-form description.
func (d *Dish) Describe(description string) {
	d.Description = description
}

// UpdateAssets stores the image and AR model locations.
func (d *Dish) UpdateAssets(imageURL, arModelURL string) {
	d.ImageURL = imageURL
	d.ARModelURL = arModelURL
}

// ReplaceSuggestions swaps the suggested dish id list.
func (d *Dish) ReplaceSuggestions(ids []int64) {
	d.SuggestedDishIDs = append([]int64{}, ids...)
}

// Clone returns a defensive copy of the aggregate.
func (d *Dish) Clone() *Dish {
	clone := *d
	clone.SuggestedDishIDs = append([]int64{}, d.SuggestedDishIDs...)
	return &clone
}
