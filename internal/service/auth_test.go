package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestTokens() *auth.TokenManager {
	return auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	var created *domain.User
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) { created = user }).
		Return(nil)

	user, token, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "Alice@Example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret-password"))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: domain.RoleUser}

	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	userRepo.EXPECT().SetLastLogin(mock.Anything, "u1", mock.Anything).Return(nil)

	got, token, err := svc.Login(context.Background(), "alice@example.com", "secret-password")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", got.ID)
	assert.NotNil(t, got.LastLogin)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	user := &domain.User{ID: "u1", PasswordHash: hash}

	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailMasked(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, newTestTokens(), newTestLogger(t))

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
