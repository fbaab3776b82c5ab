package types

// DishMutationInput captures inbound create/update payloads while
// preserving field presence: nil means "leave as is" on updates.
type DishMutationInput struct {
	Name             *string
	Description      *string
	Price            *string
	Category         *string
	ImageURL         *string
	ARModelURL       *string
	Available        *bool
	SuggestedDishIDs *[]int64
}
