package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

// Service orchestrates the order ledger use cases.
type Service struct {
	repo       ports.Repository
	catalog    ports.Catalog
	restaurant ports.RestaurantInfo
	publisher  ports.EventPublisher
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithRestaurantInfo wires the metadata source used on bills.
func WithRestaurantInfo(info ports.RestaurantInfo) Option {
	return func(s *Service) { s.restaurant = info }
}

// WithEventPublisher wires a best-effort publisher for order events.
func WithEventPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// NewService wires the ledger with its repository and catalog reader.
func NewService(repo ports.Repository, catalog ports.Catalog, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder validates the request, snapshots catalog prices and names
// onto the items, and persists the new pending order atomically.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	if input.TableNumber <= 0 {
		return nil, mapError(domain.ErrInvalidTableNumber)
	}
	if len(input.Items) == 0 {
		return nil, mapError(domain.ErrEmptyItems)
	}
	items := make([]domain.Item, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, mapError(domain.ErrInvalidQuantity)
		}
		dish, err := s.catalog.GetDish(ctx, item.DishID)
		if err != nil {
			if errors.Is(err, ports.ErrDishNotFound) {
				return nil, mapError(fmt.Errorf("%w: dish %d", ErrUnknownDish, item.DishID))
			}
			return nil, err
		}
		if !dish.Available {
			return nil, mapError(fmt.Errorf("%w: dish %d", ErrDishUnavailable, item.DishID))
		}
		items = append(items, domain.Item{
			DishID:    dish.ID,
			DishName:  dish.Name,
			Quantity:  item.Quantity,
			UnitPrice: dish.Price,
		})
	}
	order, err := domain.NewOrder(input.TableNumber, input.CustomerID, items)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.OrderPlaced{
		BaseEvent:   domain.BaseEvent{Timestamp: time.Now().UTC()},
		OrderID:     saved.ID,
		TableNumber: saved.TableNumber,
		Total:       saved.Total().StringFixed(2),
		Items:       len(saved.Items),
	})
	return saved, nil
}

// AdvanceStatus moves an order one step along the lifecycle. The
// repository transition is an atomic check-then-set so a racing request
// on the same order loses with an invalid-transition error.
func (s *Service) AdvanceStatus(ctx context.Context, input types.AdvanceStatusInput) (*domain.Order, error) {
	next, err := domain.ParseStatus(input.NextStatus)
	if err != nil {
		return nil, mapError(err)
	}
	order, err := s.repo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	from := order.Status
	if err := order.Advance(next); err != nil {
		return nil, err
	}
	if err := s.repo.AdvanceStatus(ctx, order.ID, from, next); err != nil {
		return nil, err
	}
	order.StatusUpdatedAt = time.Now().UTC()
	s.publish(ctx, domain.OrderStatusChanged{
		BaseEvent:  domain.BaseEvent{Timestamp: order.StatusUpdatedAt},
		OrderID:    order.ID,
		FromStatus: from,
		ToStatus:   next,
	})
	return order, nil
}

// GenerateBill builds the read-only billing projection for an order.
// Any order may be previewed; the status is left untouched.
func (s *Service) GenerateBill(ctx context.Context, orderID int64) (*types.Bill, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	bill := &types.Bill{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		PlacedAt:    order.CreatedAt,
		Lines:       make([]types.BillLine, 0, len(order.Items)),
		Total:       order.Total(),
	}
	for _, item := range order.Items {
		bill.Lines = append(bill.Lines, types.BillLine{
			DishName:  item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}
	// Bills stay available even when the restaurant profile is missing.
	if s.restaurant != nil {
		if details, err := s.restaurant.Current(ctx); err == nil {
			bill.Restaurant = details
		}
	}
	return bill, nil
}

// GetOrderByID loads a single order.
func (s *Service) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// ListOrders returns the requested ledger slice in creation order.
func (s *Service) ListOrders(ctx context.Context, input types.ListOrdersInput) ([]*domain.Order, error) {
	filter, ok := ports.ParseFilter(input.Filter)
	if !ok {
		return nil, mapError(fmt.Errorf("%w: %q", ErrUnknownFilter, input.Filter))
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	// Event delivery never fails the ledger operation.
	_ = s.publisher.Publish(ctx, event)
}

var _ ports.Service = (*Service)(nil)
