package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	restaurantserver "github.com/menulink/restaurant-api-server/go"

	catalogmemory "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/menulink/restaurant-api-server/internal/domains/catalog/application"
	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"

	orderscatalog "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/catalog"
	orderskafka "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/messaging/kafka"
	ordersmemory "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/persistence/postgres"
	ordersrestaurant "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/restaurant"
	ordersworkflows "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/menulink/restaurant-api-server/internal/domains/orders/application"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"

	restaurantmemory "github.com/menulink/restaurant-api-server/internal/domains/restaurant/adapters/memory"
	restaurantpostgres "github.com/menulink/restaurant-api-server/internal/domains/restaurant/adapters/persistence/postgres"
	restaurantapp "github.com/menulink/restaurant-api-server/internal/domains/restaurant/application"
	restaurantports "github.com/menulink/restaurant-api-server/internal/domains/restaurant/ports"

	platformmigrations "github.com/menulink/restaurant-api-server/internal/platform/migrations"
	platformobservability "github.com/menulink/restaurant-api-server/internal/platform/observability"
	platformpostgres "github.com/menulink/restaurant-api-server/internal/platform/postgres"
)

// Run boots the restaurant HTTP API with observability, repositories,
// workflows, and event publishing wired.
func Run(ctx context.Context) error {
	const serviceName = "restaurant-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	catalogRepo := buildCatalogRepository(db, logger)
	orderRepo := buildOrderRepository(db, logger)
	restaurantRepo := buildRestaurantRepository(db, logger)

	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	restaurantService := restaurantapp.NewService(restaurantRepo)

	orderOptions := []ordersapp.Option{
		ordersapp.WithRestaurantInfo(ordersrestaurant.NewInfo(restaurantRepo)),
	}
	if publisher, err := connectEventPublisher(cfg); err != nil {
		logger.Warn("Kafka publisher unavailable, order events disabled", slog.String("error", err.Error()))
	} else {
		defer func() { _ = publisher.Close(context.Background()) }()
		orderOptions = append(orderOptions, ordersapp.WithEventPublisher(publisher))
		logger.Info("Kafka order events enabled", slog.String("topic", cfg.KafkaOrderTopic))
	}
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo, orderscatalog.NewReader(catalogRepo), orderOptions...),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline PlaceOrder", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := restaurantserver.ApiHandleFunctions{
		CatalogAPI:    restaurantserver.NewCatalogAPI(catalogService),
		OrdersAPI:     restaurantserver.NewOrdersAPI(orderService, orderWorkflows),
		RestaurantAPI: restaurantserver.NewRestaurantAPI(restaurantService),
	}

	router := restaurantserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("restaurant API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("restaurant API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func buildCatalogRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("catalog repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func buildRestaurantRepository(db *gorm.DB, logger *slog.Logger) restaurantports.Repository {
	if db == nil {
		return restaurantmemory.NewRepository()
	}
	logger.Info("restaurant repository configured with postgres")
	return restaurantpostgres.NewRepository(db)
}

func connectEventPublisher(cfg Config) (*orderskafka.Publisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS not configured")
	}
	return orderskafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
