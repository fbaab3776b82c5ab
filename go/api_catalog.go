package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dishhttpmapper "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /v1/menu
// List the dishes currently available to order
func (api *CatalogAPI) GetMenu(c *gin.Context) {
	dishes, err := api.service.Menu(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishhttpmapper.FromDomainDishList(dishes))
}

// Get /v1/dishes
// List the whole catalog including unavailable dishes
func (api *CatalogAPI) ListDishes(c *gin.Context) {
	dishes, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishhttpmapper.FromDomainDishList(dishes))
}

// Post /v1/dishes
// Add a new dish to the catalog
func (api *CatalogAPI) AddDish(c *gin.Context) {
	var payload dishhttpmapper.MutationDish
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	dish, err := api.service.AddDish(c.Request.Context(), dishhttpmapper.ToMutationInput(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dishhttpmapper.FromDomainDish(dish))
}

// Get /v1/dishes/:dishId
// Find dish by ID
func (api *CatalogAPI) GetDish(c *gin.Context) {
	id, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}
	dish, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishhttpmapper.FromDomainDish(dish))
}

// Put /v1/dishes/:dishId
// Update an existing dish
func (api *CatalogAPI) UpdateDish(c *gin.Context) {
	id, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}
	var payload dishhttpmapper.MutationDish
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	dish, err := api.service.UpdateDish(c.Request.Context(), id, dishhttpmapper.ToMutationInput(payload))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishhttpmapper.FromDomainDish(dish))
}

// Get /v1/dishes/:dishId/suggestions
// List available dishes suggested alongside this one
func (api *CatalogAPI) GetSuggestions(c *gin.Context) {
	id, ok := parseIDParam(c, "dishId")
	if !ok {
		return
	}
	dishes, err := api.service.Suggestions(c.Request.Context(), id)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishhttpmapper.FromDomainDishList(dishes))
}
