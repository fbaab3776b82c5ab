package types

// ProfileMutationInput captures partial profile edits; nil leaves a
// field untouched.
type ProfileMutationInput struct {
	Name         *string
	Address      *string
	Phone        *string
	Email        *string
	OpeningHours *string
	Description  *string
	Quote        *string
}
