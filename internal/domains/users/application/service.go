package application

import (
	"context"
	"strings"

	"github.com/soocrates/minishop/internal/domains/users/domain"
	"github.com/soocrates/minishop/internal/domains/users/ports"
)

// Service exposes user directory use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user with the sign-up bonus wallet. The repository
// assigns the id.
func (s *Service) Register(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := domain.NewUser(0, name, email, domain.SignupBonus)
	if err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, user)
}

// Login resolves a user by email. Passwords are not part of the directory
// contract, so an unknown email is the only failure mode.
func (s *Service) Login(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ports.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
