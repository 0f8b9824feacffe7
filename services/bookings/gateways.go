package bookings

import (
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tumpangan/tumpangan/services/bookings BookingGW

// BookingGW represents the booking gateway interface for publishing events
type BookingGW interface {
	PublishBookingCreated(event *models.BookingCreatedEvent) error
}
