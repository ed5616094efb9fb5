package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersapp "github.com/soocrates/minishop/internal/domains/orders/application"
	"github.com/soocrates/minishop/internal/domains/orders/domain"
	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

const tracerName = "github.com/soocrates/minishop/internal/domains/orders/adapters/observability/service"

// Service decorates the order coordinator with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
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

// New wraps the core order coordinator.
func New(inner ports.Service, opts ...Option) ports.Service {
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

func (s *Service) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int64("order.user_id", req.UserID),
			attribute.Int64("order.product_id", req.ProductID),
			attribute.Int64("order.quantity", req.Quantity)))
	defer span.End()

	s.logInfo(ctx, "placing order",
		slog.Int64("user_id", req.UserID), slog.Int64("product_id", req.ProductID), slog.Int64("quantity", req.Quantity))
	result, err := s.inner.PlaceOrder(ctx, req)
	if err != nil {
		s.metrics.recordRejected(ctx, rejectionReason(err))
		return nil, s.handleError(ctx, span, err, "order rejected",
			slog.Int64("user_id", req.UserID), slog.Int64("product_id", req.ProductID))
	}
	s.metrics.recordConfirmed(ctx)
	s.logInfo(ctx, "order confirmed", slog.Int64("order_id", result.ID), slog.Int64("user_id", result.UserID))
	span.SetAttributes(attribute.Int64("order.id", result.ID))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrdersByUser",
		trace.WithAttributes(attribute.Int64("order.user_id", userID)))
	defer span.End()

	result, err := s.inner.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by user", slog.Int64("user_id", userID))
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

// rejectionReason buckets PlaceOrder failures for the rejection counter.
func rejectionReason(err error) string {
	var unavailable *ports.UnavailableError
	var upstream *ports.UpstreamError
	switch {
	case errors.Is(err, ordersapp.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ordersapp.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, ordersapp.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.As(err, &unavailable):
		return "upstream_unavailable"
	case errors.As(err, &upstream):
		return "upstream_error"
	default:
		return "validation"
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersConfirmed metric.Int64Counter
	ordersRejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	confirmed, _ := m.Int64Counter("orders.service.confirmed", metric.WithDescription("Number of orders confirmed"))
	rejected, _ := m.Int64Counter("orders.service.rejected", metric.WithDescription("Number of order attempts rejected"))
	return serviceMetrics{ordersConfirmed: confirmed, ordersRejected: rejected}
}

func (m serviceMetrics) recordConfirmed(ctx context.Context) {
	if m.ordersConfirmed != nil {
		m.ordersConfirmed.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, reason string) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}

var _ ports.Service = (*Service)(nil)
