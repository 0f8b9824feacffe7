package gateway

import (
	natspkg "github.com/tumpangan/tumpangan/internal/pkg/nats"
)

// BookingGW implements the booking gateway over NATS
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{natsClient: natsClient}
}
