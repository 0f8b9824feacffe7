package usecase

import (
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/auth"
	"github.com/tumpangan/tumpangan/services/auth/ratelimit"
	"github.com/tumpangan/tumpangan/services/auth/store"
)

// AuthUC implements the auth usecase
type AuthUC struct {
	cfg      *models.Config
	otpStore *store.Store
	limiter  *ratelimit.Limiter
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	clock    auth.Clock
}

// NewAuthUC creates a new auth usecase. A nil clock defaults to wall-clock time.
func NewAuthUC(
	cfg *models.Config,
	otpStore *store.Store,
	limiter *ratelimit.Limiter,
	authRepo auth.AuthRepo,
	authGW auth.AuthGW,
	clock auth.Clock,
) *AuthUC {
	if clock == nil {
		clock = auth.RealClock()
	}
	return &AuthUC{
		cfg:      cfg,
		otpStore: otpStore,
		limiter:  limiter,
		authRepo: authRepo,
		authGW:   authGW,
		clock:    clock,
	}
}
