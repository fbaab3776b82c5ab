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

	"github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	"github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
	"github.com/menulink/restaurant-api-server/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	dish, err := domain.NewDish(0, "Margherita", decimal.RequireFromString("12.99"), domain.CategoryDinner)
	require.NoError(t, err)
	dish.ReplaceSuggestions([]int64{7, 3})

	saved, err := repo.Save(ctx, dish)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", fetched.Name)
	assert.Equal(t, []int64{7, 3}, fetched.SuggestedDishIDs)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("12.99")))
}

func TestRepository_SaveUpdatesExistingDish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	dish, err := domain.NewDish(0, "Margherita", decimal.RequireFromString("12.99"), domain.CategoryDinner)
	require.NoError(t, err)
	saved, err := repo.Save(ctx, dish)
	require.NoError(t, err)

	require.NoError(t, saved.Reprice(decimal.RequireFromString("14.50")))
	saved.SetAvailability(false)
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("14.50")))
	assert.False(t, updated.Available)
}

func TestRepository_ListOnlyAvailable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	pasta, err := domain.NewDish(0, "Pasta", decimal.RequireFromString("11.00"), domain.CategoryDinner)
	require.NoError(t, err)
	_, err = repo.Save(ctx, pasta)
	require.NoError(t, err)

	oyster, err := domain.NewDish(0, "Oyster Plate", decimal.RequireFromString("21.00"), domain.CategorySpecial)
	require.NoError(t, err)
	oyster.SetAvailability(false)
	_, err = repo.Save(ctx, oyster)
	require.NoError(t, err)

	menu, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Pasta", menu[0].Name)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
