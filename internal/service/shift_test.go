package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

type shiftMocks struct {
	shifts       *mocks.MockShiftRepo
	venues       *mocks.MockVenueRepo
	users        *mocks.MockUserRepo
	availability *mocks.MockAvailabilityRepo
}

func newShiftService(t *testing.T) (*ShiftService, shiftMocks) {
	m := shiftMocks{
		shifts:       mocks.NewMockShiftRepo(t),
		venues:       mocks.NewMockVenueRepo(t),
		users:        mocks.NewMockUserRepo(t),
		availability: mocks.NewMockAvailabilityRepo(t),
	}
	svc := NewShiftService(m.shifts, m.venues, m.users, m.availability, newTestLogger(t))
	return svc, m
}

func openShift(id string) *domain.Shift {
	start := time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC)
	return &domain.Shift{
		ID:            id,
		VenueID:       "v1",
		StartTime:     start,
		EndTime:       start.Add(6 * time.Hour),
		Status:        domain.ShiftStatusConfirmed,
		WorkersNeeded: 3,
	}
}

func TestShiftService_Assign_Available(t *testing.T) {
	svc, m := newShiftService(t)
	shift := openShift("s1")

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.AvailabilityPreference{
		AvailableDates: []string{"2026-09-04"},
	}, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(nil, nil)
	m.shifts.EXPECT().Assign(mock.Anything, "s1", "u1").Return(&domain.ShiftAssignment{
		ID:      "a1",
		ShiftID: "s1",
		UserID:  "u1",
		Status:  domain.AssignmentStatusPending,
	}, nil)

	assignment, err := svc.Assign(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentStatusPending, assignment.Status)
}

func TestShiftService_Assign_DateNotListed(t *testing.T) {
	svc, m := newShiftService(t)
	shift := openShift("s1")

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.AvailabilityPreference{
		AvailableDates: []string{"2026-09-05"},
	}, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(nil, nil)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrWorkerUnavailable)
	m.shifts.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestShiftService_Assign_OverlappingAssignment(t *testing.T) {
	svc, m := newShiftService(t)
	shift := openShift("s1")

	overlapping := &domain.Shift{
		ID:        "s2",
		StartTime: shift.StartTime.Add(time.Hour),
		EndTime:   shift.EndTime.Add(time.Hour),
	}

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return([]*domain.Shift{overlapping}, nil)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrWorkerUnavailable)
}

func TestShiftService_Assign_ShiftNotOpen(t *testing.T) {
	svc, m := newShiftService(t)
	shift := openShift("s1")
	shift.Status = domain.ShiftStatusCancelled

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrShiftNotOpen)
}

func TestShiftService_Assign_DuplicatePropagates(t *testing.T) {
	svc, m := newShiftService(t)
	shift := openShift("s1")

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(nil, nil)
	m.shifts.EXPECT().Assign(mock.Anything, "s1", "u1").Return(nil, domain.ErrAlreadyAssigned)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
}

func TestShiftService_Create_RejectsBackwardsRange(t *testing.T) {
	svc, _ := newShiftService(t)
	sess := &auth.Session{UserID: "admin", Role: domain.RoleAdmin}

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), sess, domain.CreateShiftInput{
		VenueID:       "v1",
		StartTime:     start,
		EndTime:       start.Add(-time.Hour),
		WorkersNeeded: 2,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestShiftService_Create_VenueRoleNeedsManagement(t *testing.T) {
	svc, m := newShiftService(t)
	sess := &auth.Session{UserID: "u-venue", Role: domain.RoleVenue}

	m.venues.EXPECT().ManagesVenue(mock.Anything, "v1", "u-venue").Return(false, nil)

	start := time.Now().Add(24 * time.Hour)
	_, err := svc.Create(context.Background(), sess, domain.CreateShiftInput{
		VenueID:       "v1",
		StartTime:     start,
		EndTime:       start.Add(6 * time.Hour),
		WorkersNeeded: 2,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestShiftService_Bulk_RescheduleRequiresDate(t *testing.T) {
	svc, _ := newShiftService(t)
	sess := &auth.Session{UserID: "admin", Role: domain.RoleAdmin}

	_, err := svc.Bulk(context.Background(), sess, domain.BulkShiftInput{
		Action:   domain.BulkActionReschedule,
		ShiftIDs: []string{"s1"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestShiftService_Bulk_AdminSkipsOwnershipCheck(t *testing.T) {
	svc, m := newShiftService(t)
	sess := &auth.Session{UserID: "admin", Role: domain.RoleAdmin}

	input := domain.BulkShiftInput{
		Action:   domain.BulkActionCancel,
		ShiftIDs: []string{"s1", "s2"},
	}
	m.shifts.EXPECT().BulkUpdate(mock.Anything, input).Return(2, nil)

	affected, err := svc.Bulk(context.Background(), sess, input)

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestShiftService_Assign_OverlapFromPreviousWeek(t *testing.T) {
	svc, m := newShiftService(t)

	// Monday small hours; the held shift began the previous Sunday evening
	// and runs past midnight into this shift.
	shift := &domain.Shift{
		ID:            "s1",
		VenueID:       "v1",
		StartTime:     time.Date(2026, 9, 7, 0, 30, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 7, 5, 30, 0, 0, time.UTC),
		Status:        domain.ShiftStatusConfirmed,
		WorkersNeeded: 2,
	}
	held := &domain.Shift{
		ID:        "s0",
		StartTime: time.Date(2026, 9, 6, 22, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 2, 0, 0, 0, time.UTC),
	}

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1", mock.Anything, mock.Anything).
		Return([]*domain.Shift{held}, nil)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrWorkerUnavailable)
	m.shifts.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestShiftService_Assign_WindowCoversShiftCrossingWeekEnd(t *testing.T) {
	svc, m := newShiftService(t)

	// Sunday evening shift running past midnight: the assignment query window
	// must extend beyond the Monday boundary to the shift's own end.
	shift := &domain.Shift{
		ID:            "s1",
		VenueID:       "v1",
		StartTime:     time.Date(2026, 9, 6, 20, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 9, 7, 2, 0, 0, 0, time.UTC),
		Status:        domain.ShiftStatusConfirmed,
		WorkersNeeded: 2,
	}

	m.shifts.EXPECT().GetByID(mock.Anything, "s1").Return(shift, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.availability.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, nil)
	m.shifts.EXPECT().ListActiveByUserBetween(mock.Anything, "u1",
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), shift.EndTime).
		Return(nil, nil)
	m.shifts.EXPECT().Assign(mock.Anything, "s1", "u1").Return(&domain.ShiftAssignment{
		ID:      "a1",
		ShiftID: "s1",
		UserID:  "u1",
		Status:  domain.AssignmentStatusPending,
	}, nil)

	_, err := svc.Assign(context.Background(), "s1", "u1")

	require.NoError(t, err)
}
