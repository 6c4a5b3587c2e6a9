package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type ShiftService struct {
	shiftRepo        ports.ShiftRepo
	venueRepo        ports.VenueRepo
	userRepo         ports.UserRepo
	availabilityRepo ports.AvailabilityRepo
	logger           logger.Logger
}

func NewShiftService(
	shiftRepo ports.ShiftRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	availabilityRepo ports.AvailabilityRepo,
	logger logger.Logger,
) *ShiftService {
	return &ShiftService{
		shiftRepo:        shiftRepo,
		venueRepo:        venueRepo,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

func (s *ShiftService) Create(ctx context.Context, sess *auth.Session, input domain.CreateShiftInput) (*domain.Shift, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	if input.WorkersNeeded < 1 {
		return nil, fmt.Errorf("%w: workers needed must be at least 1", domain.ErrValidation)
	}
	if err := s.requireVenueAccess(ctx, sess, input.VenueID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shift := &domain.Shift{
		ID:            uuid.New().String(),
		VenueID:       input.VenueID,
		StartTime:     input.StartTime.UTC(),
		EndTime:       input.EndTime.UTC(),
		Status:        domain.ShiftStatusPending,
		WorkersNeeded: input.WorkersNeeded,
		HourlyRate:    input.HourlyRate,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}

	s.logger.Info("shift created",
		logger.String("shift_id", shift.ID),
		logger.String("venue_id", shift.VenueID),
	)
	return shift, nil
}

func (s *ShiftService) Get(ctx context.Context, id string) (*domain.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

func (s *ShiftService) GetDetails(ctx context.Context, id string) (*domain.ShiftDetails, error) {
	return s.shiftRepo.GetDetails(ctx, id)
}

func (s *ShiftService) List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	return s.shiftRepo.List(ctx, filter)
}

// Assign books a worker onto a shift. The availability check here is
// advisory; the repository transaction holds the row lock that makes the
// capacity and duplicate checks authoritative.
func (s *ShiftService) Assign(ctx context.Context, shiftID, userID string) (*domain.ShiftAssignment, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.Open() {
		return nil, domain.ErrShiftNotOpen
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	pref, err := s.availabilityRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	weekStart := startOfWeek(shift.StartTime)
	weekEnd := weekStart.AddDate(0, 0, 7)
	if shift.EndTime.After(weekEnd) {
		weekEnd = shift.EndTime
	}
	weekShifts, err := s.shiftRepo.ListActiveByUserBetween(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("load week assignments: %w", err)
	}
	if !domain.CheckAvailability(pref, shift, weekShifts) {
		return nil, domain.ErrWorkerUnavailable
	}

	assignment, err := s.shiftRepo.Assign(ctx, shiftID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("worker assigned",
		logger.String("shift_id", shiftID),
		logger.String("user_id", userID),
		logger.String("assignment_id", assignment.ID),
	)
	return assignment, nil
}

func (s *ShiftService) UpdateAssignmentStatus(ctx context.Context, assignmentID string, status domain.AssignmentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown assignment status %q", domain.ErrValidation, status)
	}
	return s.shiftRepo.UpdateAssignmentStatus(ctx, assignmentID, status)
}

// Bulk applies one action to many shifts. Venue callers must manage every
// venue the selected shifts belong to; admins skip the ownership check.
func (s *ShiftService) Bulk(ctx context.Context, sess *auth.Session, input domain.BulkShiftInput) (int64, error) {
	if len(input.ShiftIDs) == 0 {
		return 0, fmt.Errorf("%w: no shifts selected", domain.ErrValidation)
	}
	switch input.Action {
	case domain.BulkActionPublish, domain.BulkActionCancel:
	case domain.BulkActionReschedule:
		if input.NewDate == nil {
			return 0, fmt.Errorf("%w: reschedule requires a new date", domain.ErrValidation)
		}
	default:
		return 0, fmt.Errorf("%w: unknown bulk action %q", domain.ErrValidation, input.Action)
	}

	if sess.Role != domain.RoleAdmin {
		for _, id := range input.ShiftIDs {
			shift, err := s.shiftRepo.GetByID(ctx, id)
			if err != nil {
				return 0, err
			}
			if err := s.requireVenueAccess(ctx, sess, shift.VenueID); err != nil {
				return 0, err
			}
		}
	}

	affected, err := s.shiftRepo.BulkUpdate(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("bulk %s: %w", input.Action, err)
	}

	s.logger.Info("bulk shift action applied",
		logger.String("action", string(input.Action)),
		logger.Int("requested", len(input.ShiftIDs)),
		logger.Int64("affected", affected),
	)
	return affected, nil
}

func (s *ShiftService) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	return s.shiftRepo.CompletePast(ctx, now)
}

func (s *ShiftService) CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.shiftRepo.CancelStalePending(ctx, olderThan)
}

func (s *ShiftService) requireVenueAccess(ctx context.Context, sess *auth.Session, venueID string) error {
	if sess.Role == domain.RoleAdmin {
		return nil
	}
	ok, err := s.venueRepo.ManagesVenue(ctx, venueID, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return err
		}
		return fmt.Errorf("check venue access: %w", err)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// startOfWeek truncates to the preceding Monday at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	day := t.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
