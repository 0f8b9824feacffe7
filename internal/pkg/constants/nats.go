package constants

// NATS Subjects
const (
	// Bookings service
	SubjectBookingCreated = "booking.created"
)

// NSQ Topics
const (
	// Auth service
	TopicOTPEmail = "otp_email"
)
