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

const invitationColumns = `id, email, role, token, created_by, status, expires_at, created_at`

type InvitationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvitationRepo(db *dbpg.DB) *InvitationRepository {
	return &InvitationRepository{db: db, strategy: defaultStrategy()}
}

func scanInvitation(row interface{ Scan(...any) error }) (*domain.Invitation, error) {
	var i domain.Invitation
	err := row.Scan(&i.ID, &i.Email, &i.Role, &i.Token, &i.CreatedBy, &i.Status, &i.ExpiresAt, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("scan invitation: %w", err)
	}
	return &i, nil
}

func (r *InvitationRepository) Create(ctx context.Context, i *domain.Invitation) error {
	query := `INSERT INTO invitations (id, email, role, token, created_by, status, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		i.ID, i.Email, i.Role, i.Token, i.CreatedBy, i.Status, i.ExpiresAt, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return scanInvitation(row)
}

// MarkExpired flips a pending invitation to expired. The status guard makes
// the lazy-expiry transition happen at most once.
func (r *InvitationRepository) MarkExpired(ctx context.Context, id string) error {
	query := `UPDATE invitations SET status = $2 WHERE id = $1 AND status = $3`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id,
		domain.InvitationStatusExpired, domain.InvitationStatusPending); err != nil {
		return fmt.Errorf("mark invitation expired: %w", err)
	}
	return nil
}

// MarkAccepted is terminal: only a pending invitation can be accepted.
func (r *InvitationRepository) MarkAccepted(ctx context.Context, id string) error {
	query := `UPDATE invitations SET status = $2 WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id,
		domain.InvitationStatusAccepted, domain.InvitationStatusPending)
	if err != nil {
		return fmt.Errorf("mark invitation accepted: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

// ExpireStale is the periodic sweep backing the lazy check-on-read expiry.
func (r *InvitationRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE invitations SET status = $2
			  WHERE status = $3 AND expires_at < $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now,
		domain.InvitationStatusExpired, domain.InvitationStatusPending)
	if err != nil {
		return 0, fmt.Errorf("expire stale invitations: %w", err)
	}
	return res.RowsAffected()
}
