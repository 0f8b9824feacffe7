package constants

// Redis key formats
const (
	// Auth service
	KeyUserSession = "user:session:%s" // Format: user:session:{user_id}

	// Chat service
	KeyDriverPushTokens = "driver:push:%s" // Format: driver:push:{driver_id}
	KeyDriverSet        = "drivers:registered"
)
