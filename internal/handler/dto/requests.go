package dto

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	InviteToken string `json:"invite_token"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
}

type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type UpdateVenueRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

type AddManagerRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateShiftRequest struct {
	VenueID       string  `json:"venue_id" binding:"required,uuid"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	WorkersNeeded int     `json:"workers_needed" binding:"required,gt=0"`
	HourlyRate    float64 `json:"hourly_rate"`
	Notes         string  `json:"notes"`
}

type AssignShiftRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type UpdateAssignmentRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkShiftRequest struct {
	Action   string   `json:"action" binding:"required"`
	ShiftIDs []string `json:"shift_ids" binding:"required,min=1"`
	NewDate  string   `json:"new_date"`
}

type CreateBookingRequest struct {
	VenueID       string `json:"venue_id" binding:"required,uuid"`
	EntertainerID string `json:"entertainer_id" binding:"required,uuid"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
}

type SaveAvailabilityRequest struct {
	AvailableDates      []string `json:"available_dates"`
	PreferredSuburbs    []string `json:"preferred_suburbs"`
	PreferredVenues     []string `json:"preferred_venues"`
	PreferredShiftTypes []string `json:"preferred_shift_types"`
	MaxShiftsPerWeek    int      `json:"max_shifts_per_week"`
	Notes               string   `json:"notes"`
}

type CreateFeedbackRequest struct {
	VenueID      string `json:"venue_id" binding:"required,uuid"`
	UserID       string `json:"user_id" binding:"required,uuid"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	MayNotReturn bool   `json:"may_not_return"`
}

type ReviewFeedbackRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type ResendInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

type ApplyCreditRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Type   string `json:"transaction_type" binding:"required"`
}

type ShareDocumentRequest struct {
	Name   string `json:"name" binding:"required"`
	URL    string `json:"url" binding:"required"`
	UserID string `json:"user_id" binding:"required,uuid"`
}

type AdminSetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
