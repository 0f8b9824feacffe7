package gateway

import (
	nsqpkg "github.com/tumpangan/tumpangan/internal/pkg/nsq"
)

// AuthGW implements the auth gateway over NSQ; OTP emails are queued for an
// out-of-process mailer
type AuthGW struct {
	producer *nsqpkg.Producer
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(producer *nsqpkg.Producer) *AuthGW {
	return &AuthGW{
		producer: producer,
	}
}
