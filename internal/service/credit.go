package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type CreditService struct {
	creditRepo ports.CreditRepo
	userRepo   ports.UserRepo
	logger     logger.Logger
}

func NewCreditService(creditRepo ports.CreditRepo, userRepo ports.UserRepo, logger logger.Logger) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Apply posts a credit transaction and returns the resulting balance. Amount
// is always positive; the transaction type decides the sign. Deductions that
// would take the balance below zero are rejected.
func (s *CreditService) Apply(ctx context.Context, userID string, amount int64, txType domain.CreditTransactionType) (int64, *domain.CreditTransaction, error) {
	if amount <= 0 {
		return 0, nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !txType.Valid() {
		return 0, nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, txType)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return 0, nil, err
	}

	balance, record, err := s.creditRepo.Apply(ctx, userID, amount, txType)
	if err != nil {
		return 0, nil, err
	}

	s.logger.Info("credit transaction applied",
		logger.String("user_id", userID),
		logger.String("type", string(txType)),
		logger.Int64("amount", amount),
		logger.Int64("balance", balance),
	)
	return balance, record, nil
}

func (s *CreditService) History(ctx context.Context, userID string) ([]*domain.CreditTransaction, error) {
	return s.creditRepo.ListByUser(ctx, userID)
}

func (s *CreditService) Balance(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}
