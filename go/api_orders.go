package restaurantserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/http/mapper"
	orderstypes "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	ordersdomain "github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

// IdempotencyKeyHeader lets clients retry order placement safely.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// OrdersAPI wires HTTP transport with the order ledger service and workflows.
type OrdersAPI struct {
	service   ordersports.Service
	workflows ordersports.WorkflowOrchestrator
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ordersports.Service, workflows ordersports.WorkflowOrchestrator) OrdersAPI {
	return OrdersAPI{service: service, workflows: workflows}
}

// Post /v1/orders
// Place a new order for a table
func (api *OrdersAPI) PlaceOrder(c *gin.Context) {
	var payload orderhttpmapper.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderhttpmapper.ToPlaceOrderInput(payload, c.GetHeader(IdempotencyKeyHeader))
	order, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(order))
}

func (api *OrdersAPI) placeOrder(ctx context.Context, input orderstypes.PlaceOrderInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.PlaceOrder(ctx, input)
}

// Get /v1/orders
// List orders filtered by all, active or history
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	input := orderstypes.ListOrdersInput{Filter: c.Query("filter")}
	orders, err := api.service.ListOrders(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /v1/orders/:orderId
// Fetch a single order
func (api *OrdersAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Post /v1/orders/:orderId/status
// Advance an order one step along its lifecycle
func (api *OrdersAPI) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload orderhttpmapper.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.AdvanceStatus(c.Request.Context(), orderstypes.AdvanceStatusInput{
		OrderID:    id,
		NextStatus: payload.Status,
	})
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Post /v1/orders/:orderId/settle
// Settle an order by advancing it to paid
func (api *OrdersAPI) SettleOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.AdvanceStatus(c.Request.Context(), orderstypes.AdvanceStatusInput{
		OrderID:    id,
		NextStatus: string(ordersdomain.StatusPaid),
	})
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /v1/orders/:orderId/bill
// Render the bill for an order without changing its status
func (api *OrdersAPI) GetBill(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	bill, err := api.service.GenerateBill(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromBill(bill))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
