package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrVenueNotFound        = errors.New("venue not found")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDocumentNotFound     = errors.New("document not found")
)

var (
	ErrShiftFull          = errors.New("shift has no free spots")
	ErrShiftNotOpen       = errors.New("shift is not open for assignment")
	ErrAlreadyAssigned    = errors.New("worker already assigned to this shift")
	ErrWorkerUnavailable  = errors.New("worker is not available for this shift")
	ErrInvalidStatusPair  = errors.New("assignment status not valid for shift status")
	ErrOverlappingBooking = errors.New("entertainer already booked for this time range")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not permitted for this role")
	ErrRateLimited        = errors.New("too many requests")
)

var (
	ErrValidation = errors.New("validation error")
)
