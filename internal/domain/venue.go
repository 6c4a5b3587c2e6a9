package domain

import "time"

type VenueStatus string

const (
	VenueStatusActive   VenueStatus = "active"
	VenueStatusInactive VenueStatus = "inactive"
	VenueStatusPending  VenueStatus = "pending"
)

type Venue struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	OwnerID   string      `json:"owner_id"`
	Status    VenueStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CreateVenueInput struct {
	Name    string
	Address string
	OwnerID string
}

type UpdateVenueInput struct {
	ID      string
	Name    *string
	Address *string
	Status  *VenueStatus
}
