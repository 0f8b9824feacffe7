package bookings

import (
	"context"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tumpangan/tumpangan/services/bookings BookingUC

// BookingUC represents the booking usecase interface
type BookingUC interface {
	CreateBooking(ctx context.Context, passengerID string, req *models.BookingRequest) (*models.Booking, error)
}
