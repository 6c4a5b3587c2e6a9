package ports

import (
	"context"
	"time"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, input domain.UpdateUserInput) (*domain.User, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
