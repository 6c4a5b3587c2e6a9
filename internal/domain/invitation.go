package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// InvitationTTL is how long an invitation stays valid after creation.
const InvitationTTL = 7 * 24 * time.Hour

type Invitation struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	Token     string           `json:"token"`
	CreatedBy string           `json:"created_by"`
	Status    InvitationStatus `json:"status"`
	ExpiresAt time.Time        `json:"expires_at"`
	CreatedAt time.Time        `json:"created_at"`
}

func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
