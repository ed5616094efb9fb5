package application

import (
	"context"

	"github.com/soocrates/minishop/internal/domains/products/domain"
	"github.com/soocrates/minishop/internal/domains/products/ports"
)

// Service orchestrates catalog and stock ledger use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct validates and persists a new catalog entry. The repository
// assigns the id.
func (s *Service) CreateProduct(ctx context.Context, name string, price float64, stock int64) (*domain.Product, error) {
	product, err := domain.NewProduct(0, name, price, stock)
	if err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// DecreaseStock atomically checks and takes stock for an order.
func (s *Service) DecreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	return s.repo.DecreaseStock(ctx, id, quantity)
}

// IncreaseStock returns stock taken by an order that was never recorded.
func (s *Service) IncreaseStock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	return s.repo.IncreaseStock(ctx, id, quantity)
}

var _ ports.Service = (*Service)(nil)
