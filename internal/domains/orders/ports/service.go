package ports

import (
	"context"

	"github.com/soocrates/minishop/internal/domains/orders/domain"
)

// Service exposes the order placement use cases.
type Service interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
}
