package application

import (
	"errors"
	"fmt"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
)

var (
	// ErrValidation signals malformed or empty request content.
	ErrValidation = errors.New("invalid order request")
	// ErrInvalidInput signals a value outside its allowed range or type.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrUnknownDish marks an item referencing a dish the catalog does not know.
	ErrUnknownDish = errors.New("order references an unknown dish")
	// ErrDishUnavailable marks an item referencing a dish currently off the menu.
	ErrDishUnavailable = errors.New("order references an unavailable dish")
	// ErrUnknownFilter marks a listing filter outside all|active|history.
	ErrUnknownFilter = errors.New("unknown order filter")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidTableNumber):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, domain.ErrEmptyItems),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidUnitPrice),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, ErrUnknownDish),
		errors.Is(err, ErrDishUnavailable),
		errors.Is(err, ErrUnknownFilter):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return err
	}
}
