package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/soocrates/minishop/internal/domains/products/domain"
	"github.com/soocrates/minishop/internal/domains/products/ports"
)

// Catalog ids historically start at 101.
const firstProductID int64 = 101

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog adapter. The stock mutation methods
// run the check and the write under one lock, which is what makes the
// remote decrement "atomic-ish" from the coordinator's point of view.
type Repository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[int64]*domain.Product{}}
}

// Seed loads fixed catalog entries, keeping their explicit ids.
func (r *Repository) Seed(products ...*domain.Product) error {
	for _, product := range products {
		if _, err := r.Save(context.Background(), product); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = r.nextIDLocked()
	}
	r.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) DecreaseStock(_ context.Context, id, quantity int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if err := product.Decrease(quantity); err != nil {
		return nil, err
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) IncreaseStock(_ context.Context, id, quantity int64) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if err := product.Increase(quantity); err != nil {
		return nil, err
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) nextIDLocked() int64 {
	if len(r.products) == 0 {
		return firstProductID
	}
	var max int64
	for id := range r.products {
		if id > max {
			max = id
		}
	}
	return max + 1
}
