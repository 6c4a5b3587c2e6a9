package ports

import (
	"context"
	"time"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	ListByEntertainer(ctx context.Context, entertainerID string) ([]*domain.Booking, error)
}

type AvailabilityRepo interface {
	Upsert(ctx context.Context, p *domain.AvailabilityPreference) error
	GetByUser(ctx context.Context, userID string) (*domain.AvailabilityPreference, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) error
	GetByID(ctx context.Context, id string) (*domain.Feedback, error)
	List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error)
	Review(ctx context.Context, input domain.ReviewFeedbackInput) (*domain.Feedback, error)
}

type NotificationRepo interface {
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	ListUndispatched(ctx context.Context, limit int) ([]*domain.Notification, error)
	MarkDispatched(ctx context.Context, ids []string) error
}

type InvitationRepo interface {
	Create(ctx context.Context, i *domain.Invitation) error
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	MarkExpired(ctx context.Context, id string) error
	MarkAccepted(ctx context.Context, id string) error
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type CreditRepo interface {
	Apply(ctx context.Context, userID string, amount int64, txType domain.CreditTransactionType) (int64, *domain.CreditTransaction, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CreditTransaction, error)
}

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Document, error)
}

type Mailer interface {
	SendInvitation(ctx context.Context, email, link string) error
}
