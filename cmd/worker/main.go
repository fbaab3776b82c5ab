package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/menulink/restaurant-api-server/internal/app/api"

	catalogmemory "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
	orderscatalog "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/memory"
	ordersobs "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/menulink/restaurant-api-server/internal/domains/orders/application"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
	platformmigrations "github.com/menulink/restaurant-api-server/internal/platform/migrations"
	platformobservability "github.com/menulink/restaurant-api-server/internal/platform/observability"
	platformpostgres "github.com/menulink/restaurant-api-server/internal/platform/postgres"
	orderactivities "github.com/menulink/restaurant-api-server/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/menulink/restaurant-api-server/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "restaurant-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := api.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	orderRepo, catalogRepo, cleanupRepos := buildRepositories(ctx, cfg, logger)
	defer cleanupRepos()
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo, orderscatalog.NewReader(catalogRepo)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildRepositories(ctx context.Context, cfg api.Config, logger *slog.Logger) (ordersports.Repository, catalogports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, worker using in-memory repositories")
		return ordersmemory.NewRepository(), catalogmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("worker failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), catalogmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("worker failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), catalogmemory.NewRepository(), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return ordersmemory.NewRepository(), catalogmemory.NewRepository(), func() {}
	}
	logger.Info("worker repositories configured with postgres")
	return orderspostgres.NewRepository(db), catalogpostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}
