package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports"
)

type VenueService struct {
	venueRepo ports.VenueRepo
	logger    logger.Logger
}

func NewVenueService(venueRepo ports.VenueRepo, logger logger.Logger) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Create registers a venue in pending status; an admin activates it later.
// The owner is recorded as the first manager.
func (s *VenueService) Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: venue name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Address:   input.Address,
		OwnerID:   input.OwnerID,
		Status:    domain.VenueStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	if err := s.venueRepo.AddManager(ctx, venue.ID, input.OwnerID); err != nil {
		return nil, fmt.Errorf("add owner as manager: %w", err)
	}

	s.logger.Info("venue created",
		logger.String("venue_id", venue.ID),
		logger.String("owner_id", venue.OwnerID),
	)
	return venue, nil
}

func (s *VenueService) Get(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx)
}

func (s *VenueService) Update(ctx context.Context, input domain.UpdateVenueInput) (*domain.Venue, error) {
	if input.Status != nil {
		switch *input.Status {
		case domain.VenueStatusActive, domain.VenueStatusInactive, domain.VenueStatusPending:
		default:
			return nil, fmt.Errorf("%w: unknown venue status %q", domain.ErrValidation, *input.Status)
		}
	}
	return s.venueRepo.Update(ctx, input)
}

func (s *VenueService) AddManager(ctx context.Context, venueID, userID string) error {
	if err := s.venueRepo.AddManager(ctx, venueID, userID); err != nil {
		return fmt.Errorf("add manager: %w", err)
	}
	s.logger.Info("venue manager added",
		logger.String("venue_id", venueID),
		logger.String("user_id", userID),
	)
	return nil
}

func (s *VenueService) ManagesVenue(ctx context.Context, venueID, userID string) (bool, error) {
	return s.venueRepo.ManagesVenue(ctx, venueID, userID)
}
