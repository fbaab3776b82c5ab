package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profilehttpmapper "github.com/menulink/restaurant-api-server/internal/domains/restaurant/adapters/http/mapper"
	restaurantports "github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"
)

// RestaurantAPI wires HTTP transport with the restaurant profile service.
type RestaurantAPI struct {
	service restaurantports.Service
}

// NewRestaurantAPI creates a RestaurantAPI backed by the provided service.
func NewRestaurantAPI(service restaurantports.Service) RestaurantAPI {
	return RestaurantAPI{service: service}
}

// Get /v1/restaurant
// Fetch the restaurant profile shown on menus and bills
func (api *RestaurantAPI) GetProfile(c *gin.Context) {
	profile, err := api.service.Get(c.Request.Context())
	if err != nil {
		respondRestaurantServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profilehttpmapper.FromDomainProfile(profile))
}

// Put /v1/restaurant
// Update the restaurant profile
func (api *RestaurantAPI) UpdateProfile(c *gin.Context) {
	var payload profilehttpmapper.MutationProfile
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	profile, err := api.service.Update(c.Request.Context(), profilehttpmapper.ToMutationInput(payload))
	if err != nil {
		respondRestaurantServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profilehttpmapper.FromDomainProfile(profile))
}
