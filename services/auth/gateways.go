package auth

import (
	"context"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tumpangan/tumpangan/services/auth AuthGW

// AuthGW represents the auth gateway interface for external notification
// delivery. Implementations must honor the context deadline.
type AuthGW interface {
	SendOTPEmail(ctx context.Context, job *models.OTPEmailJob) error
}
