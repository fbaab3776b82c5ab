package domain

import "errors"

var (
	// ErrEmptyName rejects a profile without a restaurant name.
	ErrEmptyName = errors.New("restaurant name must not be empty")
)

// Profile is the single restaurant identity shown on menus and bills.
type Profile struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
	Description  string
	// Quote is the tagline printed at the bottom of every bill.
	Quote string
}

// DefaultProfile seeds a fresh deployment before a manager edits anything.
func DefaultProfile() *Profile {
	return &Profile{
		Name:         "MenuLink Restaurant",
		Address:      "1 Harbour Street",
		Phone:        "+1-555-0100",
		Email:        "hello@menulink.example",
		OpeningHours: "Mon-Sun 11:00-22:00",
		Description:  "Seasonal plates and a short wine list.",
		Quote:        "Thank you for dining with us.",
	}
}

// Validate checks the profile invariants.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
