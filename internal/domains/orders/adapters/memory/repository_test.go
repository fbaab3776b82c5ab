package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

func newOrder(t *testing.T, table int) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(table, nil, []domain.Item{
		{DishID: 1, DishName: "Margherita", Quantity: 1, UnitPrice: decimal.RequireFromString("12.99")},
	})
	require.NoError(t, err)
	return order
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newOrder(t, 1))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newOrder(t, 2))
	require.NoError(t, err)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.CreatedAt.IsZero())
}

func TestGetByID_ReturnsClone(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Create(ctx, newOrder(t, 1))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	fetched.Items[0].Quantity = 99

	again, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, int32(1), again.Items[0].Quantity)

	_, err = repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestAdvanceStatus_ChecksCurrentStatus(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Create(ctx, newOrder(t, 1))
	require.NoError(t, err)

	require.NoError(t, repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing))
	require.ErrorIs(t, repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing), domain.ErrInvalidTransition)
	require.ErrorIs(t, repo.AdvanceStatus(ctx, 42, domain.StatusPending, domain.StatusPreparing), ports.ErrNotFound)
}

func TestAdvanceStatus_ConcurrentRequestsSingleWinner(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Create(ctx, newOrder(t, 1))
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, domain.ErrInvalidTransition)
		}
	}
	require.Equal(t, 1, winners)
}

func TestList_FiltersAndOrders(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newOrder(t, 1))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newOrder(t, 2))
	require.NoError(t, err)

	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusPending, domain.StatusPreparing))
	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusPreparing, domain.StatusDelivered))
	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusDelivered, domain.StatusPaid))

	all, err := repo.List(ctx, ports.FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, int64(1), all[0].ID)

	active, err := repo.List(ctx, ports.FilterActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, 2, active[0].TableNumber)

	history, err := repo.List(ctx, ports.FilterHistory)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, first.ID, history[0].ID)
}
