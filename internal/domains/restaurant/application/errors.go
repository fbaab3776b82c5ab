package application

import (
	"errors"
	"fmt"

	"github.com/menulink/restaurant-api-server/internal/domains/restaurant/domain"
)

// ErrInvalidInput signals the mutation violated a profile invariant.
var ErrInvalidInput = errors.New("invalid restaurant profile input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
