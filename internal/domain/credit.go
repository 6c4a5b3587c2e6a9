package domain

import "time"

type CreditTransactionType string

const (
	CreditTopup      CreditTransactionType = "topup"
	CreditDeduction  CreditTransactionType = "deduction"
	CreditAdjustment CreditTransactionType = "adjustment"
)

func (t CreditTransactionType) Valid() bool {
	switch t {
	case CreditTopup, CreditDeduction, CreditAdjustment:
		return true
	}
	return false
}

type CreditTransaction struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Amount    int64                 `json:"amount"`
	Type      CreditTransactionType `json:"transaction_type"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

const CreditStatusCompleted = "completed"
