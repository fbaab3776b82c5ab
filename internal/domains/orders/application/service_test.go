package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	types "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := order.Clone()
	f.nextID++
	clone.ID = f.nextID
	clone.CreatedAt = time.Now().UTC()
	clone.StatusUpdatedAt = clone.CreatedAt
	f.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (f *fakeOrderRepo) AdvanceStatus(_ context.Context, id int64, from, to domain.Status) error {
	order, ok := f.orders[id]
	if !ok {
		return ports.ErrNotFound
	}
	if order.Status != from {
		return domain.ErrInvalidTransition
	}
	order.Status = to
	order.StatusUpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, filter ports.Filter) ([]*domain.Order, error) {
	var list []*domain.Order
	for id := int64(1); id <= f.nextID; id++ {
		order, ok := f.orders[id]
		if !ok {
			continue
		}
		switch filter {
		case ports.FilterActive:
			if !order.Active() {
				continue
			}
		case ports.FilterHistory:
			if order.Active() {
				continue
			}
		}
		list = append(list, order.Clone())
	}
	return list, nil
}

type fakeCatalog struct {
	dishes map[int64]ports.CatalogDish
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{dishes: map[int64]ports.CatalogDish{}}
}

func (f *fakeCatalog) add(id int64, name, price string, available bool) {
	f.dishes[id] = ports.CatalogDish{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: available,
	}
}

func (f *fakeCatalog) GetDish(_ context.Context, id int64) (ports.CatalogDish, error) {
	dish, ok := f.dishes[id]
	if !ok {
		return ports.CatalogDish{}, ports.ErrDishNotFound
	}
	return dish, nil
}

func (f *fakeCatalog) IsAvailable(_ context.Context, id int64) (bool, error) {
	dish, ok := f.dishes[id]
	if !ok {
		return false, nil
	}
	return dish.Available, nil
}

type fakePublisher struct {
	events []domain.Event
}

func (f *fakePublisher) Publish(_ context.Context, event domain.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close(_ context.Context) error { return nil }

type fakeRestaurantInfo struct {
	details types.RestaurantDetails
	err     error
}

func (f *fakeRestaurantInfo) Current(_ context.Context) (types.RestaurantDetails, error) {
	return f.details, f.err
}

func newTestService(t *testing.T) (*Service, *fakeOrderRepo, *fakeCatalog, *fakePublisher) {
	t.Helper()
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.add(1, "Margherita", "12.99", true)
	catalog.add(2, "Lemonade", "4.99", true)
	catalog.add(3, "Oyster Plate", "21.00", false)
	publisher := &fakePublisher{}
	svc := NewService(repo, catalog, WithEventPublisher(publisher))
	return svc, repo, catalog, publisher
}

func TestPlaceOrder_SnapshotsPricesAndNames(t *testing.T) {
	svc, _, catalog, publisher := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items: []types.OrderItemInput{
			{DishID: 1, Quantity: 2},
			{DishID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, order.Status)
	require.True(t, order.Total().Equal(decimal.RequireFromString("30.97")))
	require.Equal(t, "Margherita", order.Items[0].DishName)

	// A later price change must not touch the placed order.
	catalog.add(1, "Margherita Bianca", "19.99", true)
	reloaded, err := svc.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.Total().Equal(decimal.RequireFromString("30.97")))
	require.Equal(t, "Margherita", reloaded.Items[0].DishName)

	require.Len(t, publisher.events, 1)
	require.Equal(t, "orders.order.placed", publisher.events[0].EventName())
}

func TestPlaceOrder_RejectsBadTableNumber(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 0,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidTableNumber)
}

func TestPlaceOrder_RejectsEmptyItems(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{TableNumber: 5})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, domain.ErrEmptyItems)
}

func TestPlaceOrder_RejectsUnknownDish(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 42, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ErrUnknownDish)
}

func TestPlaceOrder_RejectsUnavailableDish(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 3, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ErrDishUnavailable)
}

func TestAdvanceStatus_WalksTheChain(t *testing.T) {
	svc, _, _, publisher := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, next := range []string{"preparing", "delivered", "paid"} {
		order, err = svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: order.ID, NextStatus: next})
		require.NoError(t, err)
		require.Equal(t, domain.Status(next), order.Status)
	}
	// One placed event plus three transitions.
	require.Len(t, publisher.events, 4)
}

func TestAdvanceStatus_RejectsSkip(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: order.ID, NextStatus: "paid"})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdvanceStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: order.ID, NextStatus: "cancelled"})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestAdvanceStatus_UnknownOrder(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: 99, NextStatus: "preparing"})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAdvanceStatus_LosesRaceToConcurrentTransition(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 5,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Another request wins between the read and the write.
	require.NoError(t, repo.AdvanceStatus(context.Background(), order.ID, domain.StatusPending, domain.StatusPreparing))

	_, err = svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: order.ID, NextStatus: "preparing"})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGenerateBill_MatchesOrderAndLeavesStatus(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 8,
		Items: []types.OrderItemInput{
			{DishID: 1, Quantity: 2},
			{DishID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	bill, err := svc.GenerateBill(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, bill.OrderID)
	require.Equal(t, 8, bill.TableNumber)
	require.Len(t, bill.Lines, 2)
	require.True(t, bill.Lines[0].LineTotal.Equal(decimal.RequireFromString("25.98")))
	require.True(t, bill.Total.Equal(decimal.RequireFromString("30.97")))

	reloaded, err := svc.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, reloaded.Status)
}

func TestGenerateBill_IncludesRestaurantDetails(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.add(1, "Margherita", "12.99", true)
	svc := NewService(repo, catalog, WithRestaurantInfo(&fakeRestaurantInfo{
		details: types.RestaurantDetails{Name: "Trattoria", Quote: "Buon appetito"},
	}))

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 2,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	bill, err := svc.GenerateBill(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, "Trattoria", bill.Restaurant.Name)
	require.Equal(t, "Buon appetito", bill.Restaurant.Quote)
}

func TestGenerateBill_DegradesWithoutProfile(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.add(1, "Margherita", "12.99", true)
	svc := NewService(repo, catalog, WithRestaurantInfo(&fakeRestaurantInfo{err: ports.ErrNotFound}))

	order, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 2,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	bill, err := svc.GenerateBill(context.Background(), order.ID)
	require.NoError(t, err)
	require.Empty(t, bill.Restaurant.Name)
}

func TestListOrders_Filters(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	first, err := svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 1,
		Items:       []types.OrderItemInput{{DishID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(context.Background(), types.PlaceOrderInput{
		TableNumber: 2,
		Items:       []types.OrderItemInput{{DishID: 2, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, next := range []string{"preparing", "delivered", "paid"} {
		_, err = svc.AdvanceStatus(context.Background(), types.AdvanceStatusInput{OrderID: first.ID, NextStatus: next})
		require.NoError(t, err)
	}

	all, err := svc.ListOrders(context.Background(), types.ListOrdersInput{Filter: "all"})
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := svc.ListOrders(context.Background(), types.ListOrdersInput{Filter: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, 2, active[0].TableNumber)

	history, err := svc.ListOrders(context.Background(), types.ListOrdersInput{Filter: "history"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, first.ID, history[0].ID)

	// Empty filter defaults to all.
	defaulted, err := svc.ListOrders(context.Background(), types.ListOrdersInput{})
	require.NoError(t, err)
	require.Len(t, defaulted, 2)
}

func TestListOrders_UnknownFilter(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ListOrders(context.Background(), types.ListOrdersInput{Filter: "archived"})
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ErrUnknownFilter)
}
