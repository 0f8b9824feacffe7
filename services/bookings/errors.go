package bookings

import "errors"

// ErrInvalidBooking indicates a booking request with missing or malformed fields
var ErrInvalidBooking = errors.New("invalid booking request")
