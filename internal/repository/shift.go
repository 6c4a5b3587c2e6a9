package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

const shiftColumns = `id, venue_id, start_time, end_time, status, workers_needed, hourly_rate, notes, created_at, updated_at`

type ShiftRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewShiftRepo(db *dbpg.DB) *ShiftRepository {
	return &ShiftRepository{db: db, strategy: defaultStrategy()}
}

func scanShift(row interface{ Scan(...any) error }) (*domain.Shift, error) {
	var s domain.Shift
	err := row.Scan(
		&s.ID, &s.VenueID, &s.StartTime, &s.EndTime, &s.Status,
		&s.WorkersNeeded, &s.HourlyRate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, fmt.Errorf("scan shift: %w", err)
	}
	return &s, nil
}

func (r *ShiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	query := `INSERT INTO shifts (id, venue_id, start_time, end_time, status, workers_needed, hourly_rate, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.VenueID, s.StartTime, s.EndTime, s.Status,
		s.WorkersNeeded, s.HourlyRate, s.Notes, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return scanShift(row)
}

func (r *ShiftRepository) List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE 1=1`
	args := []any{}
	if filter.VenueID != nil {
		args = append(args, *filter.VenueID)
		query += fmt.Sprintf(" AND venue_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND start_time < $%d", len(args))
	}
	query += " ORDER BY start_time"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *ShiftRepository) GetDetails(ctx context.Context, id string) (*domain.ShiftDetails, error) {
	shift, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, shift_id, user_id, status, created_at, updated_at
			  FROM shift_assignments
			  WHERE shift_id = $1
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	details := &domain.ShiftDetails{Shift: *shift, SpotsLeft: shift.WorkersNeeded}
	for rows.Next() {
		var a domain.ShiftAssignment
		if err = rows.Scan(&a.ID, &a.ShiftID, &a.UserID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		if a.Status != domain.AssignmentStatusCancelled {
			details.SpotsLeft--
		}
		details.Assignments = append(details.Assignments, a)
	}
	return details, rows.Err()
}

// Assign writes a pending assignment and its notification outbox row in one
// transaction. The shift row is locked so concurrent callers serialize on the
// capacity check; the (shift_id, user_id) unique constraint catches repeats.
func (r *ShiftRepository) Assign(ctx context.Context, shiftID, userID string) (*domain.ShiftAssignment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ShiftStatus
	var workersNeeded int
	var startTime time.Time
	lockQuery := `SELECT status, workers_needed, start_time FROM shifts WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, shiftID).Scan(&status, &workersNeeded, &startTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, fmt.Errorf("lock shift: %w", err)
	}

	if status != domain.ShiftStatusPending && status != domain.ShiftStatusConfirmed {
		return nil, domain.ErrShiftNotOpen
	}

	var active int
	countQuery := `SELECT COUNT(*) FROM shift_assignments
				   WHERE shift_id = $1 AND status = ANY($2)`
	if err = tx.QueryRowContext(
		ctx, countQuery, shiftID, pq.Array(domain.ActiveAssignmentStatuses),
	).Scan(&active); err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	if active >= workersNeeded {
		return nil, domain.ErrShiftFull
	}

	now := time.Now().UTC()
	a := &domain.ShiftAssignment{
		ID:        uuid.New().String(),
		ShiftID:   shiftID,
		UserID:    userID,
		Status:    domain.AssignmentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	insertQuery := `INSERT INTO shift_assignments (id, shift_id, user_id, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, insertQuery, a.ID, a.ShiftID, a.UserID, a.Status, a.CreatedAt, a.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	err = insertNotificationTx(ctx, tx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationShiftAssigned,
		Title:   "New shift assignment",
		Message: "You have been offered a shift on " + startTime.Format("02 Jan 2006 15:04"),
		Metadata: map[string]string{
			"shift_id":      shiftID,
			"assignment_id": a.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}
	return a, nil
}

// ListActiveByUserBetween returns shifts the user holds an active assignment
// for, whose time range overlaps [from, to). Matching by overlap rather than
// by start time keeps a shift that began before the window but runs into it
// visible to the availability check.
func (r *ShiftRepository) ListActiveByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Shift, error) {
	query := `SELECT s.id, s.venue_id, s.start_time, s.end_time, s.status,
					 s.workers_needed, s.hourly_rate, s.notes, s.created_at, s.updated_at
			  FROM shifts s
			  JOIN shift_assignments a ON a.shift_id = s.id
			  WHERE a.user_id = $1
				AND a.status = ANY($2)
				AND s.end_time > $3 AND s.start_time < $4
			  ORDER BY s.start_time`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, pq.Array(domain.ActiveAssignmentStatuses), from, to)
	if err != nil {
		return nil, fmt.Errorf("list user shifts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// UpdateAssignmentStatus changes one assignment's status after validating the
// result against the shift/assignment reconciliation table.
func (r *ShiftRepository) UpdateAssignmentStatus(ctx context.Context, assignmentID string, status domain.AssignmentStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var shiftStatus domain.ShiftStatus
	query := `SELECT s.status
			  FROM shift_assignments a
			  JOIN shifts s ON s.id = a.shift_id
			  WHERE a.id = $1
			  FOR UPDATE OF a`
	if err = tx.QueryRowContext(ctx, query, assignmentID).Scan(&shiftStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrAssignmentNotFound
		}
		return fmt.Errorf("get assignment: %w", err)
	}

	if !domain.ValidStatusPair(shiftStatus, status) {
		return domain.ErrInvalidStatusPair
	}

	update := `UPDATE shift_assignments SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, assignmentID, status); err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}

	return tx.Commit()
}

// BulkUpdate applies one action to a set of shifts and returns how many shift
// rows changed. Cancel cascades active assignments to cancelled and writes a
// notification outbox row per affected worker. Reschedule moves the calendar
// date uniformly, keeping each shift's time-of-day and duration.
func (r *ShiftRepository) BulkUpdate(ctx context.Context, input domain.BulkShiftInput) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	switch input.Action {
	case domain.BulkActionPublish:
		query := `UPDATE shifts SET status = $2, updated_at = now()
				  WHERE id = ANY($1) AND status = $3`
		res, err = tx.ExecContext(ctx, query, pq.Array(input.ShiftIDs),
			domain.ShiftStatusConfirmed, domain.ShiftStatusPending)
		if err != nil {
			return 0, fmt.Errorf("publish shifts: %w", err)
		}

	case domain.BulkActionCancel:
		query := `UPDATE shifts SET status = $2, updated_at = now()
				  WHERE id = ANY($1) AND status <> $3`
		res, err = tx.ExecContext(ctx, query, pq.Array(input.ShiftIDs),
			domain.ShiftStatusCancelled, domain.ShiftStatusCompleted)
		if err != nil {
			return 0, fmt.Errorf("cancel shifts: %w", err)
		}
		if err = r.cascadeCancelTx(ctx, tx, input.ShiftIDs); err != nil {
			return 0, err
		}

	case domain.BulkActionReschedule:
		if input.NewDate == nil {
			return 0, fmt.Errorf("%w: reschedule requires a new date", domain.ErrValidation)
		}
		newDate := input.NewDate.UTC()
		query := `UPDATE shifts
				  SET start_time = ($2::date + start_time::time),
					  end_time   = ($2::date + start_time::time) + (end_time - start_time),
					  updated_at = now()
				  WHERE id = ANY($1) AND status <> $3 AND status <> $4`
		res, err = tx.ExecContext(ctx, query, pq.Array(input.ShiftIDs), newDate,
			domain.ShiftStatusCancelled, domain.ShiftStatusCompleted)
		if err != nil {
			return 0, fmt.Errorf("reschedule shifts: %w", err)
		}

	default:
		return 0, fmt.Errorf("%w: unknown bulk action %q", domain.ErrValidation, input.Action)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, tx.Commit()
}

// cascadeCancelTx cancels active assignments for the given shifts and fans
// out a shift_cancelled notification per affected worker.
func (r *ShiftRepository) cascadeCancelTx(ctx context.Context, tx *sql.Tx, shiftIDs []string) error {
	query := `UPDATE shift_assignments
			  SET status = $2, updated_at = now()
			  WHERE shift_id = ANY($1) AND status = ANY($3)
			  RETURNING id, shift_id, user_id`
	rows, err := tx.QueryContext(ctx, query, pq.Array(shiftIDs),
		domain.AssignmentStatusCancelled, pq.Array(domain.ActiveAssignmentStatuses))
	if err != nil {
		return fmt.Errorf("cascade cancel assignments: %w", err)
	}

	type cancelled struct{ id, shiftID, userID string }
	var affected []cancelled
	for rows.Next() {
		var c cancelled
		if err = rows.Scan(&c.id, &c.shiftID, &c.userID); err != nil {
			rows.Close()
			return fmt.Errorf("scan cancelled assignment: %w", err)
		}
		affected = append(affected, c)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return err
	}

	for _, c := range affected {
		err = insertNotificationTx(ctx, tx, &domain.Notification{
			UserID:  c.userID,
			Type:    domain.NotificationShiftCancelled,
			Title:   "Shift cancelled",
			Message: "A shift you were assigned to has been cancelled",
			Metadata: map[string]string{
				"shift_id":      c.shiftID,
				"assignment_id": c.id,
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CompletePast marks open shifts whose end time has passed as completed.
// Assignments still pending on those shifts are cancelled so the stored pair
// stays within the reconciliation table.
func (r *ShiftRepository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE shifts SET status = $2, updated_at = now()
			  WHERE status = ANY($3) AND end_time < $1
			  RETURNING id`
	rows, err := tx.QueryContext(ctx, query, now,
		domain.ShiftStatusCompleted,
		pq.Array([]domain.ShiftStatus{domain.ShiftStatusPending, domain.ShiftStatusConfirmed}))
	if err != nil {
		return 0, fmt.Errorf("complete past shifts: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan completed shift: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, err
	}

	if len(ids) > 0 {
		cascade := `UPDATE shift_assignments SET status = $2, updated_at = now()
					WHERE shift_id = ANY($1) AND status = $3`
		if _, err = tx.ExecContext(ctx, cascade, pq.Array(ids),
			domain.AssignmentStatusCancelled, domain.AssignmentStatusPending); err != nil {
			return 0, fmt.Errorf("cascade completed shifts: %w", err)
		}
	}

	return int64(len(ids)), tx.Commit()
}

// CancelStalePending cancels assignments that sat unaccepted past the TTL.
func (r *ShiftRepository) CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `UPDATE shift_assignments SET status = $2, updated_at = now()
			  WHERE status = $3 AND created_at < $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, olderThan,
		domain.AssignmentStatusCancelled, domain.AssignmentStatusPending)
	if err != nil {
		return 0, fmt.Errorf("cancel stale assignments: %w", err)
	}
	return res.RowsAffected()
}
