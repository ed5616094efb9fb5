package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/soocrates/minishop/internal/domains/users/domain"
	"github.com/soocrates/minishop/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory user directory adapter.
type Repository struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

func NewRepository() *Repository {
	return &Repository{users: map[int64]*domain.User{}}
}

// Seed loads fixed directory entries, keeping their explicit ids.
func (r *Repository) Seed(users ...*domain.User) error {
	for _, user := range users {
		if _, err := r.Save(context.Background(), user); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	clone := *user
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		clone.ID = r.maxIDLocked() + 1
	}
	r.users[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) maxIDLocked() int64 {
	var max int64
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max
}
