package models

import "time"

// OTP represents a pending one-time passcode bound to an email address
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPGenerateRequest is the payload for requesting a passcode
type OTPGenerateRequest struct {
	Email string `json:"email"`
}

// OTPVerifyRequest is the payload for verifying a passcode
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// OTPEmailJob is the message published to the mailer queue
type OTPEmailJob struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthResponse is returned after a successful OTP verification
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
