package repository

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type DocumentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDocumentRepo(db *dbpg.DB) *DocumentRepository {
	return &DocumentRepository{db: db, strategy: defaultStrategy()}
}

// Create inserts the document and notifies the recipient in one transaction.
func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO documents (id, name, url, user_id, uploaded_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, query, d.ID, d.Name, d.URL, d.UserID, d.UploadedBy, d.CreatedAt); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	err = insertNotificationTx(ctx, tx, &domain.Notification{
		UserID:  d.UserID,
		Type:    domain.NotificationDocumentShared,
		Title:   "New document shared",
		Message: fmt.Sprintf("%q has been shared with you", d.Name),
		Metadata: map[string]string{
			"document_id": d.ID,
		},
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Document, error) {
	query := `SELECT id, name, url, user_id, uploaded_by, created_at
			  FROM documents
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []*domain.Document
	for rows.Next() {
		var d domain.Document
		if err = rows.Scan(&d.ID, &d.Name, &d.URL, &d.UserID, &d.UploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		res = append(res, &d)
	}
	return res, rows.Err()
}
