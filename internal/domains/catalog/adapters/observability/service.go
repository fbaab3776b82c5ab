package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogtypes "github.com/menulink/restaurant-api-server/internal/domains/catalog/application/types"
	catalogdomain "github.com/menulink/restaurant-api-server/internal/domains/catalog/domain"
	catalogports "github.com/menulink/restaurant-api-server/internal/domains/catalog/ports"
)

const tracerName = "github.com/menulink/restaurant-api-server/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) AddDish(ctx context.Context, input catalogtypes.DishMutationInput) (*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.AddDish")
	defer span.End()

	result, err := s.inner.AddDish(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add dish")
	}
	s.metrics.recordMutation(ctx, "add")
	s.logInfo(ctx, "dish added", slog.Int64("dish.id", result.ID), slog.String("dish.name", result.Name))
	return result, nil
}

func (s *Service) UpdateDish(ctx context.Context, id int64, input catalogtypes.DishMutationInput) (*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateDish", trace.WithAttributes(attribute.Int64("dish.id", id)))
	defer span.End()

	result, err := s.inner.UpdateDish(ctx, id, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update dish", slog.Int64("dish.id", id))
	}
	s.metrics.recordMutation(ctx, "update")
	s.logInfo(ctx, "dish updated", slog.Int64("dish.id", result.ID))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetByID", trace.WithAttributes(attribute.Int64("dish.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load dish", slog.Int64("dish.id", id))
	}
	return result, nil
}

func (s *Service) Menu(ctx context.Context) ([]*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Menu")
	defer span.End()

	result, err := s.inner.Menu(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load menu")
	}
	span.SetAttributes(attribute.Int("menu.dishes", len(result)))
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list dishes")
	}
	span.SetAttributes(attribute.Int("catalog.dishes", len(result)))
	return result, nil
}

func (s *Service) Suggestions(ctx context.Context, id int64) ([]*catalogdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Suggestions", trace.WithAttributes(attribute.Int64("dish.id", id)))
	defer span.End()

	result, err := s.inner.Suggestions(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to resolve suggestions", slog.Int64("dish.id", id))
	}
	span.SetAttributes(attribute.Int("suggestions.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	mutations metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	mutations, _ := m.Int64Counter("catalog.service.dish_mutations", metric.WithDescription("Number of dish create and update operations"))
	return serviceMetrics{mutations: mutations}
}

func (m serviceMetrics) recordMutation(ctx context.Context, kind string) {
	if m.mutations != nil {
		m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("mutation.kind", kind)))
	}
}

var _ catalogports.Service = (*Service)(nil)
