package restaurantserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menulink/restaurant-api-server/internal/shared/access"
)

// Route binds an HTTP method and path to a handler and the console
// roles allowed to call it.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	Roles       []access.Role
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server routes.
type Routes []Route

// ApiHandleFunctions groups the API handlers per bounded context.
type ApiHandleFunctions struct {
	CatalogAPI    CatalogAPI
	OrdersAPI     OrdersAPI
	RestaurantAPI RestaurantAPI
}

// NewRouter returns a new gin router with all application routes mounted.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the application routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		handlers := make([]gin.HandlerFunc, 0, 2)
		if len(route.Roles) > 0 {
			handlers = append(handlers, access.Require(route.Roles...))
		}
		handlers = append(handlers, route.HandlerFunc)
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, handlers...)
		case http.MethodPost:
			router.POST(route.Pattern, handlers...)
		case http.MethodPut:
			router.PUT(route.Pattern, handlers...)
		case http.MethodDelete:
			router.DELETE(route.Pattern, handlers...)
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {
	c.Status(http.StatusNotImplemented)
}

var anyRole = []access.Role{access.RoleCustomer, access.RoleStaff, access.RoleManager}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "GetMenu",
			Method:      http.MethodGet,
			Pattern:     "/v1/menu",
			Roles:       anyRole,
			HandlerFunc: handleFunctions.CatalogAPI.GetMenu,
		},
		{
			Name:        "ListDishes",
			Method:      http.MethodGet,
			Pattern:     "/v1/dishes",
			Roles:       []access.Role{access.RoleManager},
			HandlerFunc: handleFunctions.CatalogAPI.ListDishes,
		},
		{
			Name:        "AddDish",
			Method:      http.MethodPost,
			Pattern:     "/v1/dishes",
			Roles:       []access.Role{access.RoleManager},
			HandlerFunc: handleFunctions.CatalogAPI.AddDish,
		},
		{
			Name:        "GetDish",
			Method:      http.MethodGet,
			Pattern:     "/v1/dishes/:dishId",
			Roles:       anyRole,
			HandlerFunc: handleFunctions.CatalogAPI.GetDish,
		},
		{
			Name:        "UpdateDish",
			Method:      http.MethodPut,
			Pattern:     "/v1/dishes/:dishId",
			Roles:       []access.Role{access.RoleManager},
			HandlerFunc: handleFunctions.CatalogAPI.UpdateDish,
		},
		{
			Name:        "GetSuggestions",
			Method:      http.MethodGet,
			Pattern:     "/v1/dishes/:dishId/suggestions",
			Roles:       anyRole,
			HandlerFunc: handleFunctions.CatalogAPI.GetSuggestions,
		},
		{
			Name:        "PlaceOrder",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders",
			Roles:       []access.Role{access.RoleCustomer, access.RoleStaff},
			HandlerFunc: handleFunctions.OrdersAPI.PlaceOrder,
		},
		{
			Name:        "ListOrders",
			Method:      http.MethodGet,
			Pattern:     "/v1/orders",
			Roles:       []access.Role{access.RoleStaff, access.RoleManager},
			HandlerFunc: handleFunctions.OrdersAPI.ListOrders,
		},
		{
			Name:        "GetOrder",
			Method:      http.MethodGet,
			Pattern:     "/v1/orders/:orderId",
			Roles:       anyRole,
			HandlerFunc: handleFunctions.OrdersAPI.GetOrder,
		},
		{
			Name:        "UpdateOrderStatus",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders/:orderId/status",
			Roles:       []access.Role{access.RoleStaff, access.RoleManager},
			HandlerFunc: handleFunctions.OrdersAPI.UpdateOrderStatus,
		},
		{
			Name:        "SettleOrder",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders/:orderId/settle",
			Roles:       []access.Role{access.RoleManager},
			HandlerFunc: handleFunctions.OrdersAPI.SettleOrder,
		},
		{
			Name:        "GetBill",
			Method:      http.MethodGet,
			Pattern:     "/v1/orders/:orderId/bill",
			Roles:       []access.Role{access.RoleStaff, access.RoleManager},
			HandlerFunc: handleFunctions.OrdersAPI.GetBill,
		},
		{
			Name:        "GetProfile",
			Method:      http.MethodGet,
			Pattern:     "/v1/restaurant",
			Roles:       anyRole,
			HandlerFunc: handleFunctions.RestaurantAPI.GetProfile,
		},
		{
			Name:        "UpdateProfile",
			Method:      http.MethodPut,
			Pattern:     "/v1/restaurant",
			Roles:       []access.Role{access.RoleManager},
			HandlerFunc: handleFunctions.RestaurantAPI.UpdateProfile,
		},
	}
}
