package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderstypes "github.com/menulink/restaurant-api-server/internal/domains/orders/application/types"
	ordersdomain "github.com/menulink/restaurant-api-server/internal/domains/orders/domain"
	ordersports "github.com/menulink/restaurant-api-server/internal/domains/orders/ports"
)

const tracerName = "github.com/menulink/restaurant-api-server/internal/domains/orders/adapters/observability/service"

// Service decorates the order ledger with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
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

// New wraps the core order ledger service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
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

func (s *Service) PlaceOrder(ctx context.Context, input orderstypes.PlaceOrderInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int("order.table_number", input.TableNumber),
			attribute.Int("order.items", len(input.Items)),
		))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int("order.table_number", input.TableNumber), slog.Int("order.items", len(input.Items)))
	result, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.Int("order.table_number", input.TableNumber))
	}
	s.metrics.recordPlaced(ctx)
	s.logInfo(ctx, "order placed",
		slog.Int64("order.id", result.ID),
		slog.String("order.total", result.Total().StringFixed(2)),
		slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) AdvanceStatus(ctx context.Context, input orderstypes.AdvanceStatusInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AdvanceStatus",
		trace.WithAttributes(
			attribute.Int64("order.id", input.OrderID),
			attribute.String("order.next_status", input.NextStatus),
		))
	defer span.End()

	s.logInfo(ctx, "advancing order status", slog.Int64("order.id", input.OrderID), slog.String("order.next_status", input.NextStatus))
	result, err := s.inner.AdvanceStatus(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to advance order status", slog.Int64("order.id", input.OrderID))
	}
	s.metrics.recordTransition(ctx, result.Status)
	s.logInfo(ctx, "order status advanced", slog.Int64("order.id", result.ID), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) GenerateBill(ctx context.Context, orderID int64) (*orderstypes.Bill, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GenerateBill", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "generating bill", slog.Int64("order.id", orderID))
	result, err := s.inner.GenerateBill(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to generate bill", slog.Int64("order.id", orderID))
	}
	span.SetAttributes(attribute.Int("bill.lines", len(result.Lines)))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID int64) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", orderID))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, input orderstypes.ListOrdersInput) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders", trace.WithAttributes(attribute.String("order.filter", input.Filter)))
	defer span.End()

	result, err := s.inner.ListOrders(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders", slog.String("order.filter", input.Filter))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
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
	ordersPlaced      metric.Int64Counter
	statusTransitions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	statusTransitions, _ := m.Int64Counter("orders.service.status_transitions", metric.WithDescription("Number of successful status transitions"))
	return serviceMetrics{ordersPlaced: ordersPlaced, statusTransitions: statusTransitions}
}

func (m serviceMetrics) recordPlaced(ctx context.Context) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status ordersdomain.Status) {
	if m.statusTransitions != nil {
		m.statusTransitions.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ ordersports.Service = (*Service)(nil)
