package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a ride request from a passenger
type Booking struct {
	ID             uuid.UUID `json:"id" db:"id"`
	PassengerID    uuid.UUID `json:"passenger_id" db:"passenger_id"`
	PickupAddress  string    `json:"pickup_address" db:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address" db:"dropoff_address"`
	Notes          string    `json:"notes" db:"notes"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the payload for creating a booking
type BookingRequest struct {
	PickupAddress  string `json:"pickup_address"`
	DropoffAddress string `json:"dropoff_address"`
	Notes          string `json:"notes"`
}

// BookingCreatedEvent is published to NATS when a booking is stored
type BookingCreatedEvent struct {
	BookingID      string    `json:"booking_id"`
	PassengerID    string    `json:"passenger_id"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	CreatedAt      time.Time `json:"created_at"`
}
