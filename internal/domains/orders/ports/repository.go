package ports

import (
	"context"

	"github.com/soocrates/minishop/internal/domains/orders/domain"
)

// Repository is the append-only ledger of confirmed orders. Implementations
// must synchronize Append internally: concurrent appends receive distinct,
// monotonically increasing ids and the stored sequence reflects completion
// order. No update or delete operation exists.
type Repository interface {
	Append(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
}
