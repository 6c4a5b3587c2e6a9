package domain

import "time"

type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusConfirmed, AssignmentStatusCancelled:
		return true
	}
	return false
}

var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentStatusPending, AssignmentStatusConfirmed,
}

type ShiftAssignment struct {
	ID        string           `json:"id"`
	ShiftID   string           `json:"shift_id"`
	UserID    string           `json:"user_id"`
	Status    AssignmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// validStatusPairs is the reconciliation table between a shift's status and
// the status of its assignments. A cancelled shift may only carry cancelled
// assignments: cancelling a shift cascades its active assignments, so the
// (cancelled, confirmed) combination is unrepresentable rather than ambiguous.
var validStatusPairs = map[ShiftStatus]map[AssignmentStatus]bool{
	ShiftStatusPending: {
		AssignmentStatusPending:   true,
		AssignmentStatusConfirmed: true,
		AssignmentStatusCancelled: true,
	},
	ShiftStatusConfirmed: {
		AssignmentStatusPending:   true,
		AssignmentStatusConfirmed: true,
		AssignmentStatusCancelled: true,
	},
	ShiftStatusCancelled: {
		AssignmentStatusCancelled: true,
	},
	ShiftStatusCompleted: {
		AssignmentStatusConfirmed: true,
		AssignmentStatusCancelled: true,
	},
}

// ValidStatusPair reports whether an assignment in the given status may exist
// under a shift in the given status. Writes producing an invalid pair must be
// rejected with ErrInvalidStatusPair.
func ValidStatusPair(shift ShiftStatus, assignment AssignmentStatus) bool {
	return validStatusPairs[shift][assignment]
}
