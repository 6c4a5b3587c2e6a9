package domain

import "time"

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "PENDING"
	FeedbackStatusReviewed FeedbackStatus = "REVIEWED"
	FeedbackStatusResolved FeedbackStatus = "RESOLVED"
)

type Feedback struct {
	ID           string         `json:"id"`
	VenueID      string         `json:"venue_id"`
	UserID       string         `json:"user_id"`
	Rating       int            `json:"rating"`
	Comment      string         `json:"comment"`
	MayNotReturn bool           `json:"may_not_return"`
	Status       FeedbackStatus `json:"status"`
	ReviewerID   *string        `json:"reviewer_id,omitempty"`
	ReviewNotes  string         `json:"review_notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type CreateFeedbackInput struct {
	VenueID      string
	UserID       string
	Rating       int
	Comment      string
	MayNotReturn bool
}

type ReviewFeedbackInput struct {
	ID         string
	ReviewerID string
	Status     FeedbackStatus
	Notes      string
}

type FeedbackFilter struct {
	VenueID *string
	Status  *FeedbackStatus
}
