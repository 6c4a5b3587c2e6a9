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

type BookingService struct {
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	userRepo    ports.UserRepo
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create books an entertainer for a venue. Overlapping bookings for the same
// entertainer are rejected by the storage layer with ErrOverlappingBooking.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	if _, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, input.EntertainerID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		VenueID:       input.VenueID,
		EntertainerID: input.EntertainerID,
		StartTime:     input.StartTime.UTC(),
		EndTime:       input.EndTime.UTC(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", booking.VenueID),
		logger.String("entertainer_id", booking.EntertainerID),
	)
	return booking, nil
}

func (s *BookingService) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByVenue(ctx, venueID)
}

func (s *BookingService) ListByEntertainer(ctx context.Context, entertainerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByEntertainer(ctx, entertainerID)
}
