package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{db: db, strategy: defaultStrategy()}
}

func (r *NotificationRepository) scanAll(ctx context.Context, query string, args ...any) ([]*domain.Notification, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var meta []byte
		if err = rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&meta, &n.Read, &n.DispatchedAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if len(meta) > 0 {
			if err = json.Unmarshal(meta, &n.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal notification metadata: %w", err)
			}
		}
		res = append(res, &n)
	}
	return res, rows.Err()
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, type, title, message, metadata, read, dispatched_at, created_at
			  FROM notifications
			  WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = false`
	}
	query += ` ORDER BY created_at DESC`
	return r.scanAll(ctx, query, userID)
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// ListUndispatched returns outbox rows not yet handed to the queue, oldest
// first, bounded by limit.
func (r *NotificationRepository) ListUndispatched(ctx context.Context, limit int) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, type, title, message, metadata, read, dispatched_at, created_at
			  FROM notifications
			  WHERE dispatched_at IS NULL
			  ORDER BY created_at
			  LIMIT $1`
	return r.scanAll(ctx, query, limit)
}

func (r *NotificationRepository) MarkDispatched(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE notifications SET dispatched_at = now() WHERE id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark dispatched: %w", err)
	}
	return nil
}
