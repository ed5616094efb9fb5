package ports

import (
	"context"
	"errors"

	"github.com/soocrates/minishop/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository stores catalog entries. DecreaseStock and IncreaseStock must
// be atomic: the existence check, the level check, and the mutation happen
// under one critical section so concurrent orders can never oversell.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	DecreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
	IncreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
}
