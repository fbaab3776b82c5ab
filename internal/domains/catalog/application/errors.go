package application

import (
	"errors"
	"fmt"

	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals the request violated a catalog invariant.
	ErrInvalidInput = errors.New("invalid dish input")
	// ErrInvalidPrice signals a price that could not be parsed as a decimal amount.
	ErrInvalidPrice = errors.New("dish price is not a valid decimal amount")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidPrice) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
