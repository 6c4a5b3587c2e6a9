package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type UserService struct {
	userRepo ports.UserRepo
	logger   logger.Logger
}

func NewUserService(userRepo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List returns users matching the filter. Non-admin callers only ever see
// their own record, regardless of the filter they send.
func (s *UserService) List(ctx context.Context, sess *auth.Session, filter domain.UserFilter) ([]*domain.User, error) {
	if sess.Role != domain.RoleAdmin {
		filter = domain.UserFilter{IDs: []string{sess.UserID}}
	}
	return s.userRepo.List(ctx, filter)
}

// Update applies a partial update. Changing a user's role is an admin-only
// operation, and non-admins may only touch their own record.
func (s *UserService) Update(ctx context.Context, sess *auth.Session, input domain.UpdateUserInput) (*domain.User, error) {
	if sess.Role != domain.RoleAdmin {
		if input.ID != sess.UserID {
			return nil, domain.ErrForbidden
		}
		if input.Role != nil {
			return nil, fmt.Errorf("%w: role changes require admin", domain.ErrForbidden)
		}
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *input.Role)
	}

	user, err := s.userRepo.Update(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("user updated", logger.String("user_id", user.ID))
	return user, nil
}
