package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/soocrates/minishop/internal/domains/orders/domain"
	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

// Service coordinates order placement across the user directory and the
// inventory ledger. The two remote calls run strictly in sequence: the
// decrement must not happen for a user the directory rejects. No global
// transaction spans the services; if the local append fails after the
// decrement succeeded, the stock is re-incremented as compensation.
type Service struct {
	repo        ports.Repository
	users       ports.UserDirectory
	inventory   ports.InventoryLedger
	logger      *slog.Logger
	maxQuantity int64
}

type Option func(*Service)

// WithLogger attaches a logger used for compensation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxQuantity caps the quantity a single order may request. Zero means
// no cap.
func WithMaxQuantity(max int64) Option {
	return func(s *Service) {
		s.maxQuantity = max
	}
}

// NewService wires the coordinator with its dependencies.
func NewService(repo ports.Repository, users ports.UserDirectory, inventory ports.InventoryLedger, opts ...Option) *Service {
	s := &Service{repo: repo, users: users, inventory: inventory}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder runs the placement sequence: validate, verify the user,
// decrement stock, append the confirmed order. Any failure short-circuits
// with a typed error and the store is never partially written.
func (s *Service) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	if err := req.Validate(s.maxQuantity); err != nil {
		return nil, err
	}

	outcome, err := s.users.LookupUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if outcome != ports.UserFound {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, req.UserID)
	}

	result, err := s.inventory.DecreaseStock(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	switch result.Outcome {
	case ports.StockDecremented:
		// fall through to the append
	case ports.StockProductMissing:
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, req.ProductID)
	case ports.StockInsufficient:
		return nil, fmt.Errorf("%w: product %d, quantity %d", ErrInsufficientStock, req.ProductID, req.Quantity)
	default:
		return nil, &ports.UpstreamError{Service: ports.ServiceProduct, Reason: fmt.Sprintf("unknown stock outcome %q", result.Outcome)}
	}

	saved, err := s.repo.Append(ctx, domain.NewConfirmedOrder(req))
	if err != nil {
		s.compensateDecrement(ctx, req)
		return nil, fmt.Errorf("append confirmed order: %w", err)
	}
	return saved, nil
}

// compensateDecrement re-increments the stock taken by a decrement whose
// order was never recorded. Failures are logged, not surfaced: the caller
// already receives the append error.
func (s *Service) compensateDecrement(ctx context.Context, req domain.OrderRequest) {
	if err := s.inventory.IncreaseStock(ctx, req.ProductID, req.Quantity); err != nil {
		s.logWarn(ctx, "stock compensation failed, inventory may be understated",
			slog.Int64("product_id", req.ProductID),
			slog.Int64("quantity", req.Quantity),
			slog.String("error", err.Error()))
	}
}

// ListOrders returns every confirmed order in insertion order.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// ListOrdersByUser returns the user's confirmed orders in insertion order.
func (s *Service) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) logWarn(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

var _ ports.Service = (*Service)(nil)
