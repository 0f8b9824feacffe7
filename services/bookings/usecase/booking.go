package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/bookings"
)

// CreateBooking stores a new booking and announces it to drivers
func (u *BookingUC) CreateBooking(ctx context.Context, passengerID string, req *models.BookingRequest) (*models.Booking, error) {
	if req.PickupAddress == "" || req.DropoffAddress == "" {
		return nil, bookings.ErrInvalidBooking
	}

	pid, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid passenger id", bookings.ErrInvalidBooking)
	}

	now := u.clock.Now()
	booking := &models.Booking{
		ID:             uuid.New(),
		PassengerID:    pid,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		Notes:          req.Notes,
		Status:         models.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	event := &models.BookingCreatedEvent{
		BookingID:      booking.ID.String(),
		PassengerID:    booking.PassengerID.String(),
		PickupAddress:  booking.PickupAddress,
		DropoffAddress: booking.DropoffAddress,
		CreatedAt:      booking.CreatedAt,
	}
	if err := u.bookingGW.PublishBookingCreated(event); err != nil {
		// The booking is stored; drivers miss the realtime announcement only
		logger.Error("Failed to publish booking created event",
			logger.String("booking_id", booking.ID.String()),
			logger.String("subject", constants.SubjectBookingCreated),
			logger.Err(err))
	}

	logger.Info("Created booking",
		logger.String("booking_id", booking.ID.String()),
		logger.String("passenger_id", booking.PassengerID.String()))

	return booking, nil
}
