package ports

import (
	"context"
	"errors"

	"github.com/soocrates/minishop/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email")

// Repository stores directory entries. Save assigns max+1 when the id is
// zero, matching the register contract.
type Repository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
