package ports

import (
	"context"
	"time"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.Shift) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	GetDetails(ctx context.Context, id string) (*domain.ShiftDetails, error)
	List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
	Assign(ctx context.Context, shiftID, userID string) (*domain.ShiftAssignment, error)
	ListActiveByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.Shift, error)
	UpdateAssignmentStatus(ctx context.Context, assignmentID string, status domain.AssignmentStatus) error
	BulkUpdate(ctx context.Context, input domain.BulkShiftInput) (int64, error)
	CompletePast(ctx context.Context, now time.Time) (int64, error)
	CancelStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}
