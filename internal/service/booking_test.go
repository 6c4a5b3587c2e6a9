package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
	"github.com/onRAM-ai/gcg-portal/internal/service/ports/mocks"
)

func TestBookingService_Create(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewBookingService(bookingRepo, venueRepo, userRepo, newTestLogger(t))

	start := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
	input := domain.CreateBookingInput{
		VenueID:       "v1",
		EntertainerID: "u1",
		StartTime:     start,
		EndTime:       start.Add(3 * time.Hour),
	}

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	var created *domain.Booking
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { created = b }).
		Return(nil)

	booking, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, booking.ID)
	assert.Equal(t, "u1", created.EntertainerID)
	assert.True(t, created.EndTime.After(created.StartTime))
}

func TestBookingService_Create_BackwardsRange(t *testing.T) {
	svc := NewBookingService(mocks.NewMockBookingRepo(t), mocks.NewMockVenueRepo(t), mocks.NewMockUserRepo(t), newTestLogger(t))

	start := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:       "v1",
		EntertainerID: "u1",
		StartTime:     start,
		EndTime:       start.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_OverlapFromStorage(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewBookingService(bookingRepo, venueRepo, userRepo, newTestLogger(t))

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrOverlappingBooking)

	start := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:       "v1",
		EntertainerID: "u1",
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrOverlappingBooking)
}

func TestBookingService_Create_UnknownVenue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewBookingService(bookingRepo, venueRepo, userRepo, newTestLogger(t))

	venueRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrVenueNotFound)

	start := time.Date(2026, 9, 4, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		VenueID:       "ghost",
		EntertainerID: "u1",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
	bookingRepo.AssertNotCalled(t, "Create")
}
