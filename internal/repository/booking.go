package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{db: db, strategy: defaultStrategy()}
}

// Create inserts the booking and its confirmation notification atomically.
// Double-booking the entertainer is rejected by the no_overlapping_bookings
// exclusion constraint (pq code 23P01).
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, venue_id, entertainer_id, start_time, end_time, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, query, b.ID, b.VenueID, b.EntertainerID, b.StartTime, b.EndTime, b.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrOverlappingBooking
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	err = insertNotificationTx(ctx, tx, &domain.Notification{
		UserID:  b.EntertainerID,
		Type:    domain.NotificationBookingConfirmed,
		Title:   "Booking confirmed",
		Message: "You have been booked from " + b.StartTime.Format("02 Jan 2006 15:04") + " to " + b.EndTime.Format("15:04"),
		Metadata: map[string]string{
			"booking_id": b.ID,
			"venue_id":   b.VenueID,
		},
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := `SELECT id, venue_id, entertainer_id, start_time, end_time, created_at
			  FROM bookings
			  WHERE venue_id = $1
			  ORDER BY start_time`
	return r.list(ctx, query, venueID)
}

func (r *BookingRepository) ListByEntertainer(ctx context.Context, entertainerID string) ([]*domain.Booking, error) {
	query := `SELECT id, venue_id, entertainer_id, start_time, end_time, created_at
			  FROM bookings
			  WHERE entertainer_id = $1
			  ORDER BY start_time`
	return r.list(ctx, query, entertainerID)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.VenueID, &b.EntertainerID, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}
	return res, rows.Err()
}
