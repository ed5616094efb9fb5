package ports

import (
	"context"

	"github.com/soocrates/minishop/internal/domains/products/domain"
)

// Service exposes the product catalog and stock ledger use cases.
type Service interface {
	CreateProduct(ctx context.Context, name string, price float64, stock int64) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	DecreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
	IncreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
}
