package bookings

import (
	"context"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tumpangan/tumpangan/services/bookings BookingRepo

// BookingRepo represents the booking repository interface
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
}
