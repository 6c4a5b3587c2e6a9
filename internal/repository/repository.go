package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// insertNotificationTx writes a notification outbox row inside the caller's
// transaction, so the triggering write and its notification either both
// persist or neither does.
func insertNotificationTx(ctx context.Context, tx *sql.Tx, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	meta := []byte("{}")
	if len(n.Metadata) > 0 {
		var err error
		meta, err = json.Marshal(n.Metadata)
		if err != nil {
			return fmt.Errorf("marshal notification metadata: %w", err)
		}
	}

	query := `INSERT INTO notifications (id, user_id, type, title, message, metadata, read, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, false, now())`
	if _, err := tx.ExecContext(
		ctx, query, n.ID, n.UserID, n.Type, n.Title, n.Message, meta,
	); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
