package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

func newCreditService(t *testing.T) (*CreditService, *mocks.MockCreditRepo, *mocks.MockUserRepo) {
	creditRepo := mocks.NewMockCreditRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewCreditService(creditRepo, userRepo, newTestLogger(t))
	return svc, creditRepo, userRepo
}

func TestCreditService_Apply_Topup(t *testing.T) {
	svc, creditRepo, userRepo := newCreditService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Balance: 100}, nil)
	creditRepo.EXPECT().Apply(mock.Anything, "u1", int64(50), domain.CreditTopup).
		Return(150, &domain.CreditTransaction{
			ID:     "t1",
			UserID: "u1",
			Amount: 50,
			Type:   domain.CreditTopup,
			Status: domain.CreditStatusCompleted,
		}, nil)

	balance, record, err := svc.Apply(context.Background(), "u1", 50, domain.CreditTopup)

	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)
	assert.Equal(t, domain.CreditStatusCompleted, record.Status)
}

func TestCreditService_Apply_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newCreditService(t)

	_, _, err := svc.Apply(context.Background(), "u1", 0, domain.CreditTopup)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.Apply(context.Background(), "u1", -10, domain.CreditTopup)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreditService_Apply_RejectsUnknownType(t *testing.T) {
	svc, _, _ := newCreditService(t)

	_, _, err := svc.Apply(context.Background(), "u1", 10, "giveaway")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreditService_Apply_InsufficientBalance(t *testing.T) {
	svc, creditRepo, userRepo := newCreditService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Balance: 10}, nil)
	creditRepo.EXPECT().Apply(mock.Anything, "u1", int64(50), domain.CreditDeduction).
		Return(0, nil, domain.ErrValidation)

	_, _, err := svc.Apply(context.Background(), "u1", 50, domain.CreditDeduction)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreditService_Balance(t *testing.T) {
	svc, _, userRepo := newCreditService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Balance: 75}, nil)

	balance, err := svc.Balance(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(75), balance)
}
