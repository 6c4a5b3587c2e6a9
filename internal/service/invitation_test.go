package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func newInvitationService(t *testing.T) (*InvitationService, *mocks.MockInvitationRepo, *mocks.MockMailer) {
	repo := mocks.NewMockInvitationRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewInvitationService(repo, mailer, "https://portal.example.com/", newTestLogger(t))
	return svc, repo, mailer
}

func TestInvitationService_Create_TokenAndExpiry(t *testing.T) {
	svc, repo, mailer := newInvitationService(t)

	var stored *domain.Invitation
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, i *domain.Invitation) { stored = i }).
		Return(nil)
	mailer.EXPECT().SendInvitation(mock.Anything, "worker@example.com", mock.Anything).Return(nil)

	before := time.Now().UTC()
	inv, err := svc.Create(context.Background(), "Worker@Example.com", domain.RoleUser, "admin-1")
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Regexp(t, hexToken, inv.Token)
	assert.Equal(t, "worker@example.com", inv.Email)
	assert.Equal(t, domain.InvitationStatusPending, inv.Status)

	// expiry is exactly creation + 7 days
	assert.False(t, inv.ExpiresAt.Before(before.Add(domain.InvitationTTL)))
	assert.False(t, inv.ExpiresAt.After(after.Add(domain.InvitationTTL)))
}

func TestInvitationService_Create_LinkContainsToken(t *testing.T) {
	svc, repo, mailer := newInvitationService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	var link string
	mailer.EXPECT().SendInvitation(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, email, l string) { link = l }).
		Return(nil)

	inv, err := svc.Create(context.Background(), "worker@example.com", domain.RoleVenue, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com/signup?token="+inv.Token, link)
}

func TestInvitationService_Create_RejectsBadRole(t *testing.T) {
	svc, _, _ := newInvitationService(t)

	_, err := svc.Create(context.Background(), "worker@example.com", "superuser", "admin-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvitationService_Validate_Pending(t *testing.T) {
	svc, repo, _ := newInvitationService(t)

	inv := &domain.Invitation{
		ID:        "i1",
		Token:     "tok",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(inv, nil)

	got, err := svc.Validate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "i1", got.ID)
}

func TestInvitationService_Validate_LazyExpiry(t *testing.T) {
	svc, repo, _ := newInvitationService(t)

	inv := &domain.Invitation{
		ID:        "i1",
		Token:     "tok",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(inv, nil)
	repo.EXPECT().MarkExpired(mock.Anything, "i1").Return(nil).Once()

	_, err := svc.Validate(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestInvitationService_Validate_AlreadyAccepted(t *testing.T) {
	svc, repo, _ := newInvitationService(t)

	inv := &domain.Invitation{
		ID:        "i1",
		Token:     "tok",
		Status:    domain.InvitationStatusAccepted,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(inv, nil)

	_, err := svc.Validate(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
}

func TestInvitationService_Accept(t *testing.T) {
	svc, repo, _ := newInvitationService(t)

	inv := &domain.Invitation{
		ID:        "i1",
		Token:     "tok",
		Role:      domain.RoleVenue,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(inv, nil)
	repo.EXPECT().MarkAccepted(mock.Anything, "i1").Return(nil)

	got, err := svc.Accept(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, domain.InvitationStatusAccepted, got.Status)
}

func TestInvitationService_Resend(t *testing.T) {
	svc, repo, mailer := newInvitationService(t)

	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(&domain.Invitation{
		ID:        "i1",
		Email:     "worker@example.com",
		Token:     "tok",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil)
	mailer.EXPECT().SendInvitation(mock.Anything, "worker@example.com",
		"https://portal.example.com/signup?token=tok").Return(nil)

	err := svc.Resend(context.Background(), "tok")

	require.NoError(t, err)
}

func TestInvitationService_Resend_ExpiredNotSent(t *testing.T) {
	svc, repo, mailer := newInvitationService(t)

	repo.EXPECT().GetByToken(mock.Anything, "tok").Return(&domain.Invitation{
		ID:        "i1",
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}, nil)
	repo.EXPECT().MarkExpired(mock.Anything, "i1").Return(nil)

	err := svc.Resend(context.Background(), "tok")

	assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	mailer.AssertNotCalled(t, "SendInvitation")
}
