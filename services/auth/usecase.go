package auth

import (
	"context"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tumpangan/tumpangan/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// handle OTP
	GenerateOTP(ctx context.Context, email, sourceKey string) error
	VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error)
}
