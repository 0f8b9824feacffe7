package repository

import (
	"context"
	"fmt"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// CreateBooking inserts a new booking record
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, passenger_id, pickup_address, dropoff_address,
			notes, status, created_at, updated_at
		) VALUES (:id, :passenger_id, :pickup_address, :dropoff_address,
			:notes, :status, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}
