package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type AvailabilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db, strategy: defaultStrategy()}
}

// Upsert replaces the whole record. Saves are wholesale by design: the client
// always sends the full preference set.
func (r *AvailabilityRepository) Upsert(ctx context.Context, p *domain.AvailabilityPreference) error {
	query := `INSERT INTO availability_preferences
				  (user_id, available_dates, preferred_suburbs, preferred_venues,
				   preferred_shift_types, max_shifts_per_week, notes, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			  ON CONFLICT (user_id) DO UPDATE SET
				  available_dates       = EXCLUDED.available_dates,
				  preferred_suburbs     = EXCLUDED.preferred_suburbs,
				  preferred_venues      = EXCLUDED.preferred_venues,
				  preferred_shift_types = EXCLUDED.preferred_shift_types,
				  max_shifts_per_week   = EXCLUDED.max_shifts_per_week,
				  notes                 = EXCLUDED.notes,
				  updated_at            = now()`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.UserID, pq.Array(p.AvailableDates), pq.Array(p.PreferredSuburbs),
		pq.Array(p.PreferredVenues), pq.Array(p.PreferredShiftTypes),
		p.MaxShiftsPerWeek, p.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert availability: %w", err)
	}
	return nil
}

// GetByUser returns nil with no error when the user never saved preferences.
func (r *AvailabilityRepository) GetByUser(ctx context.Context, userID string) (*domain.AvailabilityPreference, error) {
	query := `SELECT user_id, available_dates, preferred_suburbs, preferred_venues,
					 preferred_shift_types, max_shifts_per_week, notes, updated_at
			  FROM availability_preferences
			  WHERE user_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var p domain.AvailabilityPreference
	err = row.Scan(
		&p.UserID, pq.Array(&p.AvailableDates), pq.Array(&p.PreferredSuburbs),
		pq.Array(&p.PreferredVenues), pq.Array(&p.PreferredShiftTypes),
		&p.MaxShiftsPerWeek, &p.Notes, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}
	return &p, nil
}
