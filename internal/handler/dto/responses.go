package dto

import (
	"time"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Balance        int64  `json:"balance"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	LastLogin      string `json:"last_login,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	OwnerID   string `json:"owner_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	VenueID       string  `json:"venue_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	WorkersNeeded int     `json:"workers_needed"`
	HourlyRate    float64 `json:"hourly_rate"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ShiftDetailsResponse struct {
	Shift       ShiftResponse        `json:"shift"`
	SpotsLeft   int                  `json:"spots_left"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type AssignmentResponse struct {
	ID        string `json:"id"`
	ShiftID   string `json:"shift_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type BulkShiftResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	VenueID       string `json:"venue_id"`
	EntertainerID string `json:"entertainer_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	CreatedAt     string `json:"created_at"`
}

type AvailabilityResponse struct {
	UserID              string   `json:"user_id"`
	AvailableDates      []string `json:"available_dates"`
	PreferredSuburbs    []string `json:"preferred_suburbs"`
	PreferredVenues     []string `json:"preferred_venues"`
	PreferredShiftTypes []string `json:"preferred_shift_types"`
	MaxShiftsPerWeek    int      `json:"max_shifts_per_week"`
	Notes               string   `json:"notes,omitempty"`
	UpdatedAt           string   `json:"updated_at"`
}

type FeedbackResponse struct {
	ID           string  `json:"id"`
	VenueID      string  `json:"venue_id"`
	UserID       string  `json:"user_id"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment,omitempty"`
	MayNotReturn bool    `json:"may_not_return"`
	Status       string  `json:"status"`
	ReviewerID   *string `json:"reviewer_id,omitempty"`
	ReviewNotes  string  `json:"review_notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type InvitationResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

type CreditTransactionResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Amount    int64  `json:"amount"`
	Type      string `json:"transaction_type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type NotificationResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt string            `json:"created_at"`
}

type DocumentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	UserID     string `json:"user_id"`
	UploadedBy string `json:"uploaded_by"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Role:           string(u.Role),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Balance:        u.Balance,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.Format(time.RFC3339)
	}
	return resp
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		OwnerID:   v.OwnerID,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		VenueID:       s.VenueID,
		StartTime:     s.StartTime.Format(time.RFC3339),
		EndTime:       s.EndTime.Format(time.RFC3339),
		Status:        string(s.Status),
		WorkersNeeded: s.WorkersNeeded,
		HourlyRate:    s.HourlyRate,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func ToShiftDetailsResponse(d *domain.ShiftDetails) ShiftDetailsResponse {
	assignments := make([]AssignmentResponse, 0, len(d.Assignments))
	for _, a := range d.Assignments {
		assignments = append(assignments, ToAssignmentResponse(&a))
	}

	return ShiftDetailsResponse{
		Shift:       ToShiftResponse(&d.Shift),
		SpotsLeft:   d.SpotsLeft,
		Assignments: assignments,
	}
}

func ToAssignmentResponse(a *domain.ShiftAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		ShiftID:   a.ShiftID,
		UserID:    a.UserID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		EntertainerID: b.EntertainerID,
		StartTime:     b.StartTime.Format(time.RFC3339),
		EndTime:       b.EndTime.Format(time.RFC3339),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(p *domain.AvailabilityPreference) AvailabilityResponse {
	return AvailabilityResponse{
		UserID:              p.UserID,
		AvailableDates:      p.AvailableDates,
		PreferredSuburbs:    p.PreferredSuburbs,
		PreferredVenues:     p.PreferredVenues,
		PreferredShiftTypes: p.PreferredShiftTypes,
		MaxShiftsPerWeek:    p.MaxShiftsPerWeek,
		Notes:               p.Notes,
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           f.ID,
		VenueID:      f.VenueID,
		UserID:       f.UserID,
		Rating:       f.Rating,
		Comment:      f.Comment,
		MayNotReturn: f.MayNotReturn,
		Status:       string(f.Status),
		ReviewerID:   f.ReviewerID,
		ReviewNotes:  f.ReviewNotes,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
}

func ToInvitationResponse(i *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        i.ID,
		Email:     i.Email,
		Role:      string(i.Role),
		Token:     i.Token,
		Status:    string(i.Status),
		ExpiresAt: i.ExpiresAt.Format(time.RFC3339),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}

func ToCreditTransactionResponse(t *domain.CreditTransaction) CreditTransactionResponse {
	return CreditTransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Amount:    t.Amount,
		Type:      string(t.Type),
		Status:    t.Status,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		Name:       d.Name,
		URL:        d.URL,
		UserID:     d.UserID,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
}
