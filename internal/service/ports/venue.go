package ports

import (
	"context"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, input domain.UpdateVenueInput) (*domain.Venue, error)
	AddManager(ctx context.Context, venueID, userID string) error
	ListManagers(ctx context.Context, venueID string) ([]string, error)
	ManagesVenue(ctx context.Context, venueID, userID string) (bool, error)
}
