package mapper

import (
	"time"

	orderstypes "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/shared/projection"
)

// OrderItemRequest is one requested line of an inbound order payload.
type OrderItemRequest struct {
	DishID   int64 `json:"dishId"`
	Quantity int32 `json:"quantity"`
}

// PlaceOrderRequest captures the payload a table submits to open an order.
type PlaceOrderRequest struct {
	TableNumber int                `json:"tableNumber"`
	CustomerID  *int64             `json:"customerId,omitempty"`
	Items       []OrderItemRequest `json:"items"`
}

// StatusUpdateRequest carries the requested next lifecycle status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderItem is the HTTP representation of an order line with its frozen price.
type OrderItem struct {
	DishID    int64  `json:"dishId"`
	DishName  string `json:"dishName"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// Order is the HTTP representation of a ledger entry.
type Order struct {
	ID              int64       `json:"id"`
	TableNumber     int         `json:"tableNumber"`
	CustomerID      *int64      `json:"customerId,omitempty"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	Total           string      `json:"total"`
	CreatedAt       time.Time   `json:"createdAt"`
	StatusUpdatedAt time.Time   `json:"statusUpdatedAt"`
}

// BillLine is one rendered bill row.
type BillLine struct {
	DishName  string `json:"dishName"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// RestaurantDetails is the profile block printed on a bill.
type RestaurantDetails struct {
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
	Quote        string `json:"quote,omitempty"`
}

// Bill is the HTTP representation of a billing read model.
type Bill struct {
	OrderID     int64             `json:"orderId"`
	TableNumber int               `json:"tableNumber"`
	PlacedAt    time.Time         `json:"placedAt"`
	Lines       []BillLine        `json:"lines"`
	Total       string            `json:"total"`
	Restaurant  RestaurantDetails `json:"restaurant"`
}

// ToPlaceOrderInput converts the transport payload into the application input.
func ToPlaceOrderInput(req PlaceOrderRequest, idempotencyKey string) orderstypes.PlaceOrderInput {
	items := make([]orderstypes.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderstypes.OrderItemInput{DishID: item.DishID, Quantity: item.Quantity})
	}
	return orderstypes.PlaceOrderInput{
		TableNumber:    req.TableNumber,
		CustomerID:     req.CustomerID,
		Items:          items,
		IdempotencyKey: idempotencyKey,
	}
}

// Project pairs an order with its lifecycle timestamps.
func Project(o *domain.Order) projection.Projection[*domain.Order] {
	return projection.Of(o, o.CreatedAt, o.StatusUpdatedAt)
}

// FromProjection maps an order projection into its transport form.
func FromProjection(p projection.Projection[*domain.Order]) Order {
	order := p.Entity
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			DishID:    item.DishID,
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}
	return Order{
		ID:              order.ID,
		TableNumber:     order.TableNumber,
		CustomerID:      order.CustomerID,
		Status:          string(order.Status),
		Items:           items,
		Total:           order.Total().StringFixed(2),
		CreatedAt:       p.Metadata.CreatedAt,
		StatusUpdatedAt: p.Metadata.UpdatedAt,
	}
}

// FromDomainOrder maps a ledger entry into its transport form.
func FromDomainOrder(o *domain.Order) Order {
	return FromProjection(Project(o))
}

// FromDomainOrderList maps a ledger slice into transport orders.
func FromDomainOrderList(list []*domain.Order) []Order {
	result := make([]Order, 0, len(list))
	for _, order := range list {
		result = append(result, FromDomainOrder(order))
	}
	return result
}

// FromBill maps the billing read model into its transport form.
func FromBill(bill *orderstypes.Bill) Bill {
	lines := make([]BillLine, 0, len(bill.Lines))
	for _, line := range bill.Lines {
		lines = append(lines, BillLine{
			DishName:  line.DishName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}
	return Bill{
		OrderID:     bill.OrderID,
		TableNumber: bill.TableNumber,
		PlacedAt:    bill.PlacedAt,
		Lines:       lines,
		Total:       bill.Total.StringFixed(2),
		Restaurant: RestaurantDetails{
			Name:         bill.Restaurant.Name,
			Address:      bill.Restaurant.Address,
			Phone:        bill.Restaurant.Phone,
			Email:        bill.Restaurant.Email,
			OpeningHours: bill.Restaurant.OpeningHours,
			Quote:        bill.Restaurant.Quote,
		},
	}
}
