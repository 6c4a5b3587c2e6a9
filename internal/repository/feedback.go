package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

const feedbackColumns = `id, venue_id, user_id, rating, comment, may_not_return,
		status, reviewer_id, review_notes, created_at, updated_at`

type FeedbackRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFeedbackRepo(db *dbpg.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db, strategy: defaultStrategy()}
}

func scanFeedback(row interface{ Scan(...any) error }) (*domain.Feedback, error) {
	var f domain.Feedback
	var notes sql.NullString
	err := row.Scan(
		&f.ID, &f.VenueID, &f.UserID, &f.Rating, &f.Comment, &f.MayNotReturn,
		&f.Status, &f.ReviewerID, &notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("scan feedback: %w", err)
	}
	f.ReviewNotes = notes.String
	return &f, nil
}

// Create inserts the feedback row; when flagged may_not_return it fans a
// notification out to every admin in the same transaction.
func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := `INSERT INTO feedback (id, venue_id, user_id, rating, comment, may_not_return, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query,
		f.ID, f.VenueID, f.UserID, f.Rating, f.Comment, f.MayNotReturn, f.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	if f.MayNotReturn {
		admins, err := adminIDsTx(ctx, tx)
		if err != nil {
			return err
		}
		for _, adminID := range admins {
			err = insertNotificationTx(ctx, tx, &domain.Notification{
				UserID:  adminID,
				Type:    domain.NotificationFeedbackFlagged,
				Title:   "Worker flagged may-not-return",
				Message: "New feedback was flagged may-not-return and needs review",
				Metadata: map[string]string{
					"feedback_id": f.ID,
					"venue_id":    f.VenueID,
					"user_id":     f.UserID,
				},
			})
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func adminIDsTx(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM users WHERE role = $1`, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan admin id: %w", err)
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return scanFeedback(row)
}

func (r *FeedbackRepository) List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE 1=1`
	args := []any{}
	if filter.VenueID != nil {
		args = append(args, *filter.VenueID)
		query += fmt.Sprintf(" AND venue_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var res []*domain.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}

func (r *FeedbackRepository) Review(ctx context.Context, input domain.ReviewFeedbackInput) (*domain.Feedback, error) {
	query := `UPDATE feedback
			  SET status = $2, reviewer_id = $3, review_notes = $4, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + feedbackColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, input.ID, input.Status, input.ReviewerID, input.Notes)
	if err != nil {
		return nil, fmt.Errorf("review feedback: %w", err)
	}
	return scanFeedback(row)
}
