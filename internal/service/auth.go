package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type AuthService struct {
	userRepo ports.UserRepo
	tokens   *auth.TokenManager
	logger   logger.Logger
}

func NewAuthService(userRepo ports.UserRepo, tokens *auth.TokenManager, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, string, error) {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(input.Email),
		PasswordHash:   hash,
		Role:           role,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	now := time.Now().UTC()
	if err := s.userRepo.SetLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; last_login is best effort.
		s.logger.Error("failed to record last login",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	}
	user.LastLogin = &now

	return user, token, nil
}
