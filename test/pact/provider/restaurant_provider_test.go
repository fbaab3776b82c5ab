//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/menulink/restaurant-api-server/test/pact"

	restaurantserver "github.com/menulink/restaurant-api-server/go"
	catalogmemory "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/menulink/restaurant-api-server/internal/domains/catalog/application"
	catalogdomain "github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	orderscatalog "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/observability"
	ordersrestaurant "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/restaurant"
	ordersworkflows "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/menulink/restaurant-api-server/internal/domains/orders/application"
	ordersdomain "github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	restaurantmemory "github.com/menulink/restaurant-api-server/internal/domains/restaurant/adapters/memory"
	restaurantapp "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRestaurantProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateMenuBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp serves the API from fresh in-memory repositories. The
// order ledger is append-only, so reset swaps in a rebuilt stack instead of
// deleting rows.
type contractProviderApp struct {
	mu      sync.Mutex
	handler http.Handler
	orders  *ordersmemory.Repository
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(app)
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	handler := a.handler
	a.mu.Unlock()
	handler.ServeHTTP(w, r)
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	seedMenu(t, catalogRepo)
	orderRepo := ordersmemory.NewRepository()
	restaurantRepo := restaurantmemory.NewRepository()

	catalogService := catalogobs.New(catalogapp.NewService(catalogRepo))
	restaurantService := restaurantapp.NewService(restaurantRepo)
	orderService := ordersobs.New(ordersapp.NewService(
		orderRepo,
		orderscatalog.NewReader(catalogRepo),
		ordersapp.WithRestaurantInfo(ordersrestaurant.NewInfo(restaurantRepo)),
	))
	workflows := ordersworkflows.NewInlineOrderWorkflows(orderService)

	handlers := restaurantserver.ApiHandleFunctions{
		CatalogAPI:    restaurantserver.NewCatalogAPI(catalogService),
		OrdersAPI:     restaurantserver.NewOrdersAPI(orderService, workflows),
		RestaurantAPI: restaurantserver.NewRestaurantAPI(restaurantService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = restaurantserver.NewRouterWithGinEngine(router, handlers)

	a.mu.Lock()
	a.handler = router
	a.orders = orderRepo
	a.mu.Unlock()
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()

	order, err := ordersdomain.NewOrder(pacttest.ExampleTableNumber, nil, []ordersdomain.Item{
		{
			DishID:    pacttest.MenuDishID,
			DishName:  "Margherita",
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("12.99"),
		},
	})
	require.NoError(t, err)

	a.mu.Lock()
	repo := a.orders
	a.mu.Unlock()

	saved, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, pacttest.ExistingOrderID, saved.ID)
}

func seedMenu(t testing.TB, repo *catalogmemory.Repository) {
	t.Helper()

	margherita, err := catalogdomain.NewDish(0, "Margherita", decimal.RequireFromString("12.99"), catalogdomain.CategoryDinner)
	require.NoError(t, err)
	saved, err := repo.Save(context.Background(), margherita)
	require.NoError(t, err)
	require.Equal(t, pacttest.MenuDishID, saved.ID)

	lemonade, err := catalogdomain.NewDish(0, "Lemonade", decimal.RequireFromString("4.99"), catalogdomain.CategoryDrinks)
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), lemonade)
	require.NoError(t, err)
}
