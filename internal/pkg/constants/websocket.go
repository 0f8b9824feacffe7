package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Room events
	EventRoomJoin  = "room_join"
	EventRoomLeave = "room_leave"

	// Chat events
	EventChatMessage = "chat_message"

	// Booking events
	EventBookingCreated = "booking_created"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)

// Well-known room names
const (
	// RoomDrivers receives booking_created events for every new booking
	RoomDrivers = "drivers"
)

// ErrorSeverity categorizes WebSocket errors for client reporting
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
