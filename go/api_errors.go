package restaurantserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/menulink/restaurant-api-server/internal/domains/catalog/application"
	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
	ordersapp "github.com/menulink/restaurant-api-server/internal/domains/orders/application"
	ordersdomain "github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
	restaurantapp "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application"
	apierrors "github.com/menulink/restaurant-api-server/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError preserves simple call sites while returning RFC 7807 responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		problem = apierrors.ErrUnauthorized.WithDetail(err.Error())
	case http.StatusForbidden:
		problem = apierrors.ErrForbidden.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondOrderServiceError maps ledger errors onto the problem taxonomy.
func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersports.ErrNotFound):
		respondProblem(c, apierrors.NewNotFoundProblem("order", c.Param("orderId")))
	case errors.Is(err, ordersdomain.ErrInvalidTransition):
		respondProblem(c, apierrors.ErrInvalidTransition.WithDetail(err.Error()))
	case errors.Is(err, ordersapp.ErrValidation):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, ordersapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
	case errors.Is(err, ordersports.ErrStorageUnavailable):
		respondProblem(c, apierrors.ErrStorageUnavailable.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondCatalogServiceError maps catalog errors onto the problem taxonomy.
func respondCatalogServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		respondProblem(c, apierrors.NewNotFoundProblem("dish", c.Param("dishId")))
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondRestaurantServiceError maps profile errors onto the problem taxonomy.
func respondRestaurantServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, restaurantapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
