package domain

import "time"

type ShiftStatus string

const (
	ShiftStatusPending   ShiftStatus = "pending"
	ShiftStatusConfirmed ShiftStatus = "confirmed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
	ShiftStatusCompleted ShiftStatus = "completed"
)

type Shift struct {
	ID            string      `json:"id"`
	VenueID       string      `json:"venue_id"`
	StartTime     time.Time   `json:"start_time"`
	EndTime       time.Time   `json:"end_time"`
	Status        ShiftStatus `json:"status"`
	WorkersNeeded int         `json:"workers_needed"`
	HourlyRate    float64     `json:"hourly_rate"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Open reports whether the shift still accepts assignments.
func (s *Shift) Open() bool {
	return s.Status == ShiftStatusPending || s.Status == ShiftStatusConfirmed
}

type ShiftDetails struct {
	Shift       Shift             `json:"shift"`
	SpotsLeft   int               `json:"spots_left"`
	Assignments []ShiftAssignment `json:"assignments"`
}

type CreateShiftInput struct {
	VenueID       string
	StartTime     time.Time
	EndTime       time.Time
	WorkersNeeded int
	HourlyRate    float64
	Notes         string
}

type ShiftFilter struct {
	VenueID *string
	Status  *ShiftStatus
	From    *time.Time
	To      *time.Time
}

type BulkShiftAction string

const (
	BulkActionPublish    BulkShiftAction = "publish"
	BulkActionCancel     BulkShiftAction = "cancel"
	BulkActionReschedule BulkShiftAction = "reschedule"
)

// BulkShiftInput applies one action to a set of shifts. NewDate is only
// consulted for reschedule and is applied uniformly: each shift keeps its
// time-of-day and duration, only the calendar date moves.
type BulkShiftInput struct {
	Action   BulkShiftAction
	ShiftIDs []string
	NewDate  *time.Time
}
