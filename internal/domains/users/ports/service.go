package ports

import (
	"context"

	"github.com/soocrates/minishop/internal/domains/users/domain"
)

// Service exposes the user directory use cases.
type Service interface {
	Register(ctx context.Context, name, email string) (*domain.User, error)
	Login(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
