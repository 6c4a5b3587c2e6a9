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

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{db: db, strategy: defaultStrategy()}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, address, owner_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Address, v.OwnerID, v.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, address, owner_id, status, created_at, updated_at
			  FROM venues
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.Address, &v.OwnerID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}
	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, address, owner_id, status, created_at, updated_at
			  FROM venues
			  ORDER BY name`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(&v.ID, &v.Name, &v.Address, &v.OwnerID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, input domain.UpdateVenueInput) (*domain.Venue, error) {
	query := `UPDATE venues
			  SET name       = COALESCE($2, name),
				  address    = COALESCE($3, address),
				  status     = COALESCE($4, status),
				  updated_at = now()
			  WHERE id = $1
			  RETURNING id, name, address, owner_id, status, created_at, updated_at`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, input.ID, input.Name, input.Address, input.Status)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(&v.ID, &v.Name, &v.Address, &v.OwnerID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}
	return &v, nil
}

func (r *VenueRepository) AddManager(ctx context.Context, venueID, userID string) error {
	query := `INSERT INTO venue_managers (venue_id, user_id, created_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, venueID, userID); err != nil {
		return fmt.Errorf("add venue manager: %w", err)
	}
	return nil
}

func (r *VenueRepository) ListManagers(ctx context.Context, venueID string) ([]string, error) {
	query := `SELECT user_id FROM venue_managers WHERE venue_id = $1`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list venue managers: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

// ManagesVenue reports whether the user owns or manages the venue.
func (r *VenueRepository) ManagesVenue(ctx context.Context, venueID, userID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM venues v
				  LEFT JOIN venue_managers m ON m.venue_id = v.id
				  WHERE v.id = $1 AND (v.owner_id = $2 OR m.user_id = $2)
			  )`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, venueID, userID)
	if err != nil {
		return false, fmt.Errorf("check venue manager: %w", err)
	}
	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan venue manager: %w", err)
	}
	return ok, nil
}
