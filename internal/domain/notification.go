package domain

import "time"

type NotificationType string

const (
	NotificationShiftAssigned    NotificationType = "shift_assigned"
	NotificationShiftCancelled   NotificationType = "shift_cancelled"
	NotificationDocumentShared   NotificationType = "document_shared"
	NotificationFeedbackFlagged  NotificationType = "feedback_flagged"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
)

// Notification doubles as the outbox row: DispatchedAt is nil until the
// dispatcher has published it to the queue.
type Notification struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	Type         NotificationType  `json:"type"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Read         bool              `json:"read"`
	DispatchedAt *time.Time        `json:"-"`
	CreatedAt    time.Time         `json:"created_at"`
}
