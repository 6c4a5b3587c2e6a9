package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/onRAM-ai/gcg-portal/internal/auth"
	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/handler/dto"
	"github.com/onRAM-ai/gcg-portal/internal/places"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserSvc interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, sess *auth.Session, filter domain.UserFilter) ([]*domain.User, error)
	Update(ctx context.Context, sess *auth.Session, input domain.UpdateUserInput) (*domain.User, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	Get(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, input domain.UpdateVenueInput) (*domain.Venue, error)
	AddManager(ctx context.Context, venueID, userID string) error
	ManagesVenue(ctx context.Context, venueID, userID string) (bool, error)
}

type ShiftSvc interface {
	Create(ctx context.Context, sess *auth.Session, input domain.CreateShiftInput) (*domain.Shift, error)
	GetDetails(ctx context.Context, id string) (*domain.ShiftDetails, error)
	List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
	Assign(ctx context.Context, shiftID, userID string) (*domain.ShiftAssignment, error)
	UpdateAssignmentStatus(ctx context.Context, assignmentID string, status domain.AssignmentStatus) error
	Bulk(ctx context.Context, sess *auth.Session, input domain.BulkShiftInput) (int64, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	ListByEntertainer(ctx context.Context, entertainerID string) ([]*domain.Booking, error)
}

type AvailabilitySvc interface {
	Save(ctx context.Context, pref *domain.AvailabilityPreference) error
	Get(ctx context.Context, userID string) (*domain.AvailabilityPreference, error)
}

type FeedbackSvc interface {
	Create(ctx context.Context, input domain.CreateFeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error)
	Review(ctx context.Context, input domain.ReviewFeedbackInput) (*domain.Feedback, error)
}

type InvitationSvc interface {
	Create(ctx context.Context, email string, role domain.Role, createdBy string) (*domain.Invitation, error)
	Validate(ctx context.Context, token string) (*domain.Invitation, error)
	Accept(ctx context.Context, token string) (*domain.Invitation, error)
	Resend(ctx context.Context, token string) error
}

type CreditSvc interface {
	Apply(ctx context.Context, userID string, amount int64, txType domain.CreditTransactionType) (int64, *domain.CreditTransaction, error)
	History(ctx context.Context, userID string) ([]*domain.CreditTransaction, error)
	Balance(ctx context.Context, userID string) (int64, error)
}

type NotificationSvc interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type DocumentSvc interface {
	Share(ctx context.Context, input domain.CreateDocumentInput) (*domain.Document, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Document, error)
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	authService         AuthSvc
	userService         UserSvc
	venueService        VenueSvc
	shiftService        ShiftSvc
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	feedbackService     FeedbackSvc
	invitationService   InvitationSvc
	creditService       CreditSvc
	notificationService NotificationSvc
	documentService     DocumentSvc
	placesClient        *places.Client

	health      map[string]Pinger
	development bool
	startedAt   time.Time
}

type Config struct {
	Auth          AuthSvc
	Users         UserSvc
	Venues        VenueSvc
	Shifts        ShiftSvc
	Bookings      BookingSvc
	Availability  AvailabilitySvc
	Feedback      FeedbackSvc
	Invitations   InvitationSvc
	Credits       CreditSvc
	Notifications NotificationSvc
	Documents     DocumentSvc
	Places        *places.Client
	Health        map[string]Pinger
	Development   bool
}

func New(cfg Config) *Handler {
	return &Handler{
		authService:         cfg.Auth,
		userService:         cfg.Users,
		venueService:        cfg.Venues,
		shiftService:        cfg.Shifts,
		bookingService:      cfg.Bookings,
		availabilityService: cfg.Availability,
		feedbackService:     cfg.Feedback,
		invitationService:   cfg.Invitations,
		creditService:       cfg.Credits,
		notificationService: cfg.Notifications,
		documentService:     cfg.Documents,
		placesClient:        cfg.Places,
		health:              cfg.Health,
		development:         cfg.Development,
		startedAt:           time.Now().UTC(),
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrShiftNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFeedbackNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrShiftFull),
		errors.Is(err, domain.ErrShiftNotOpen),
		errors.Is(err, domain.ErrAlreadyAssigned),
		errors.Is(err, domain.ErrWorkerUnavailable),
		errors.Is(err, domain.ErrInvalidStatusPair),
		errors.Is(err, domain.ErrOverlappingBooking):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
