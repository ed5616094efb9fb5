package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/soocrates/minishop/internal/domains/orders/domain"
	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory append-only order ledger. Ids start at 1 and
// increase by one per append; entries are never updated or removed, so the
// backing slice doubles as the insertion-order index.
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Append(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if order.Status != domain.StatusConfirmed {
		return nil, errors.New("only confirmed orders can be appended")
	}
	clone := *order
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	r.orders = append(r.orders, &clone)
	result := clone
	return &result, nil
}

func (r *Repository) ListAll(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) ListByUser(_ context.Context, userID int64) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			clone := *order
			list = append(list, &clone)
		}
	}
	return list, nil
}
