package auth

import (
	"errors"
	"fmt"
	"time"
)

// Issuance errors
var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrRateLimited        = errors.New("too many OTP requests")
	ErrNotificationFailed = errors.New("failed to send OTP notification")
)

// Verification errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPMismatch = errors.New("invalid otp code")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// RateLimitError carries the retry-after hint alongside ErrRateLimited
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many OTP requests, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
