package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	types "github.com/menulink/restaurant-api-server/internal/domains/catalog/application/types"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

type fakeDishRepo struct {
	dishes map[int64]*domain.Dish
	nextID int64
}

func newFakeDishRepo() *fakeDishRepo {
	return &fakeDishRepo{dishes: map[int64]*domain.Dish{}}
}

func (f *fakeDishRepo) Save(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	clone := dish.Clone()
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.dishes[clone.ID] = clone
	return clone.Clone(), nil
}

func (f *fakeDishRepo) GetByID(_ context.Context, id int64) (*domain.Dish, error) {
	dish, ok := f.dishes[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return dish.Clone(), nil
}

func (f *fakeDishRepo) List(_ context.Context, onlyAvailable bool) ([]*domain.Dish, error) {
	var list []*domain.Dish
	for id := int64(1); id <= f.nextID; id++ {
		dish, ok := f.dishes[id]
		if !ok {
			continue
		}
		if onlyAvailable && !dish.Available {
			continue
		}
		list = append(list, dish.Clone())
	}
	return list, nil
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestAddDish_DefaultsAndPersists(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	dish, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:  stringPtr("Margherita"),
		Price: stringPtr("12.99"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), dish.ID)
	require.Equal(t, domain.CategorySpecial, dish.Category)
	require.True(t, dish.Available)
	require.True(t, dish.Price.Equal(decimal.RequireFromString("12.99")))
}

func TestAddDish_RequiresName(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	_, err := svc.AddDish(context.Background(), types.DishMutationInput{Price: stringPtr("5.00")})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestAddDish_RejectsBadPrice(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	_, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:  stringPtr("Soup"),
		Price: stringPtr("cheap"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.AddDish(context.Background(), types.DishMutationInput{
		Name:  stringPtr("Soup"),
		Price: stringPtr("-2.00"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestUpdateDish_PartialMutation(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	dish, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:     stringPtr("Margherita"),
		Price:    stringPtr("12.99"),
		Category: stringPtr("dinner"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDish(context.Background(), dish.ID, types.DishMutationInput{
		Price:     stringPtr("14.50"),
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	require.Equal(t, "Margherita", updated.Name)
	require.Equal(t, domain.CategoryDinner, updated.Category)
	require.True(t, updated.Price.Equal(decimal.RequireFromString("14.50")))
	require.False(t, updated.Available)
}

func TestUpdateDish_UnknownDish(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	_, err := svc.UpdateDish(context.Background(), 42, types.DishMutationInput{Name: stringPtr("Ghost")})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMenu_OnlyAvailableDishes(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	_, err := svc.AddDish(context.Background(), types.DishMutationInput{Name: stringPtr("Pasta"), Price: stringPtr("11.00")})
	require.NoError(t, err)
	hidden, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:      stringPtr("Oyster Plate"),
		Price:     stringPtr("21.00"),
		Available: boolPtr(false),
	})
	require.NoError(t, err)

	menu, err := svc.Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	require.Equal(t, "Pasta", menu[0].Name)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, hidden.ID, all[1].ID)
}

func TestSuggestions_KeepsOrderDropsUnknownAndUnavailable(t *testing.T) {
	svc := NewService(newFakeDishRepo())

	pasta, err := svc.AddDish(context.Background(), types.DishMutationInput{Name: stringPtr("Pasta"), Price: stringPtr("11.00")})
	require.NoError(t, err)
	wine, err := svc.AddDish(context.Background(), types.DishMutationInput{Name: stringPtr("House Wine"), Price: stringPtr("6.00")})
	require.NoError(t, err)
	offMenu, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:      stringPtr("Truffle Fries"),
		Price:     stringPtr("9.00"),
		Available: boolPtr(false),
	})
	require.NoError(t, err)

	ids := []int64{wine.ID, 404, offMenu.ID, pasta.ID}
	main, err := svc.AddDish(context.Background(), types.DishMutationInput{
		Name:             stringPtr("Steak"),
		Price:            stringPtr("28.00"),
		SuggestedDishIDs: &ids,
	})
	require.NoError(t, err)

	suggestions, err := svc.Suggestions(context.Background(), main.ID)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	require.Equal(t, wine.ID, suggestions[0].ID)
	require.Equal(t, pasta.ID, suggestions[1].ID)
}
