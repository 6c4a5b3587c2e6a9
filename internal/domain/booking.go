package domain

import "time"

// Booking reserves an entertainer for a venue over a time range. Overlap for
// the same entertainer is prevented by a storage-level exclusion constraint.
type Booking struct {
	ID            string    `json:"id"`
	VenueID       string    `json:"venue_id"`
	EntertainerID string    `json:"entertainer_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	VenueID       string
	EntertainerID string
	StartTime     time.Time
	EndTime       time.Time
}
