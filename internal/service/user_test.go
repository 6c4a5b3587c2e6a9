package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

func TestUserService_Update_NonAdminCannotChangeRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "u1", Role: domain.RoleUser}
	admin := domain.RoleAdmin

	_, err := svc.Update(context.Background(), sess, domain.UpdateUserInput{
		ID:   "u1",
		Role: &admin,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_NonAdminCannotTouchOthers(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "u1", Role: domain.RoleVenue}
	name := "Mallory"

	_, err := svc.Update(context.Background(), sess, domain.UpdateUserInput{
		ID:        "u2",
		FirstName: &name,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_Update_AdminCanChangeRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	venue := domain.RoleVenue
	input := domain.UpdateUserInput{ID: "u2", Role: &venue}

	userRepo.EXPECT().Update(mock.Anything, input).
		Return(&domain.User{ID: "u2", Role: domain.RoleVenue}, nil)

	user, err := svc.Update(context.Background(), sess, input)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleVenue, user.Role)
}

func TestUserService_Update_SelfProfileEdit(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "u1", Role: domain.RoleUser}
	phone := "0400000000"
	input := domain.UpdateUserInput{ID: "u1", Phone: &phone}

	userRepo.EXPECT().Update(mock.Anything, input).
		Return(&domain.User{ID: "u1", Phone: phone}, nil)

	user, err := svc.Update(context.Background(), sess, input)

	require.NoError(t, err)
	assert.Equal(t, phone, user.Phone)
}

func TestUserService_List_NonAdminSeesOnlySelf(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "u1", Role: domain.RoleUser}
	admin := domain.RoleAdmin

	userRepo.EXPECT().List(mock.Anything, domain.UserFilter{IDs: []string{"u1"}}).
		Return([]*domain.User{{ID: "u1"}}, nil)

	// the role filter the caller sent is ignored
	users, err := svc.List(context.Background(), sess, domain.UserFilter{Role: &admin})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestUserService_List_AdminKeepsFilter(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	sess := &auth.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	venue := domain.RoleVenue
	filter := domain.UserFilter{Role: &venue}

	userRepo.EXPECT().List(mock.Anything, filter).Return(nil, nil)

	_, err := svc.List(context.Background(), sess, filter)

	require.NoError(t, err)
}
