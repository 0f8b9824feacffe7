package auth

import "time"

// Clock is the process-wide time source for OTP expiry and rate limiting.
// Injecting it lets tests drive expiry without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by time.Now
func RealClock() Clock { return realClock{} }
