package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type CreditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCreditRepo(db *dbpg.DB) *CreditRepository {
	return &CreditRepository{db: db, strategy: defaultStrategy()}
}

// Apply records a completed credit transaction and moves the user's balance
// in the same transaction, returning the new balance. Deductions below zero
// are rejected.
func (r *CreditRepository) Apply(ctx context.Context, userID string, amount int64, txType domain.CreditTransactionType) (int64, *domain.CreditTransaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var balance int64
	lockQuery := `SELECT balance FROM users WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, userID).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil, domain.ErrUserNotFound
		}
		return 0, nil, fmt.Errorf("lock user balance: %w", err)
	}

	delta := amount
	if txType == domain.CreditDeduction {
		delta = -amount
	}
	newBalance := balance + delta
	if newBalance < 0 {
		return 0, nil, fmt.Errorf("%w: balance cannot go below zero", domain.ErrValidation)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET balance = $2, updated_at = now() WHERE id = $1`,
		userID, newBalance,
	); err != nil {
		return 0, nil, fmt.Errorf("update balance: %w", err)
	}

	record := &domain.CreditTransaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Type:      txType,
		Status:    domain.CreditStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO credit_transactions (id, user_id, amount, transaction_type, status, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, insertQuery,
		record.ID, record.UserID, record.Amount, record.Type, record.Status, record.CreatedAt,
	); err != nil {
		return 0, nil, fmt.Errorf("insert credit transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit credit: %w", err)
	}
	return newBalance, record, nil
}

func (r *CreditRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CreditTransaction, error) {
	query := `SELECT id, user_id, amount, transaction_type, status, created_at
			  FROM credit_transactions
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list credit transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.CreditTransaction
	for rows.Next() {
		var t domain.CreditTransaction
		if err = rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit transaction: %w", err)
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}
