package usecase

import (
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/auth"
	"github.com/tumpangan/tumpangan/services/bookings"
)

// BookingUC implements the booking usecase
type BookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	clock       auth.Clock
}

// NewBookingUC creates a new booking usecase. A nil clock defaults to
// wall-clock time.
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	clock auth.Clock,
) *BookingUC {
	if clock == nil {
		clock = auth.RealClock()
	}
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		clock:       clock,
	}
}
