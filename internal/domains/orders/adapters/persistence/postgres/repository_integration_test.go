//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
	"github.com/menulink/restaurant-api-server/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("restaurant_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func testOrder(t *testing.T, tableNumber int) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(tableNumber, nil, []domain.Item{
		{DishID: 1, DishName: "Margherita", Quantity: 2, UnitPrice: decimal.RequireFromString("12.99")},
		{DishID: 2, DishName: "Lemonade", Quantity: 1, UnitPrice: decimal.RequireFromString("4.99")},
	})
	require.NoError(t, err)
	return order
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testOrder(t, 4))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, domain.StatusPending, saved.Status)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.TableNumber)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Margherita", fetched.Items[0].DishName)
	assert.True(t, fetched.Total().Equal(decimal.RequireFromString("30.97")))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_AdvanceStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testOrder(t, 4))
	require.NoError(t, err)

	err = repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, fetched.Status)
}

func TestRepository_AdvanceStatus_StaleRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Create(ctx, testOrder(t, 4))
	require.NoError(t, err)

	require.NoError(t, repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing))

	// Second transition from the same stale status loses the race.
	err = repo.AdvanceStatus(ctx, saved.ID, domain.StatusPending, domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = repo.AdvanceStatus(ctx, 999, domain.StatusPending, domain.StatusPreparing)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, testOrder(t, 1))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder(t, 2))
	require.NoError(t, err)

	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusPending, domain.StatusPreparing))
	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusPreparing, domain.StatusDelivered))
	require.NoError(t, repo.AdvanceStatus(ctx, first.ID, domain.StatusDelivered, domain.StatusPaid))

	all, err := repo.List(ctx, ports.FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	active, err := repo.List(ctx, ports.FilterActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 2, active[0].TableNumber)

	history, err := repo.List(ctx, ports.FilterHistory)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].ID)
}
