package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	jwtpkg "github.com/tumpangan/tumpangan/internal/pkg/jwt"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/internal/utils"
	"github.com/tumpangan/tumpangan/services/auth"
)

// GenerateOTP issues a new OTP for the given email address.
// The notifier is invoked before the record is stored: a failed or timed-out
// send leaves no pending passcode behind.
func (u *AuthUC) GenerateOTP(ctx context.Context, email, sourceKey string) error {
	isValid, normalized, err := utils.NormalizeEmail(email)
	if err != nil || !isValid {
		return fmt.Errorf("%w: %s", auth.ErrInvalidEmail, email)
	}

	decision := u.limiter.Admit(sourceKey)
	if !decision.Allowed {
		return &auth.RateLimitError{RetryAfter: decision.RetryAfter}
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := u.clock.Now()
	otp := models.OTP{
		Email:     normalized,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute),
	}

	// Dispatch the notification first; the record is stored only after a
	// successful send so a delivery failure cannot strand a live passcode.
	notifyCtx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.OTP.NotifyTimeoutSec)*time.Second)
	defer cancel()

	job := &models.OTPEmailJob{
		Email:     otp.Email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
	}
	if err := u.authGW.SendOTPEmail(notifyCtx, job); err != nil {
		logger.Warn("OTP notification dispatch failed",
			logger.String("email", otp.Email),
			logger.Err(err))
		return fmt.Errorf("%w: %v", auth.ErrNotificationFailed, err)
	}

	u.otpStore.Put(otp)

	logger.Info("Generated OTP",
		logger.String("email", otp.Email),
		logger.Time("expires_at", otp.ExpiresAt))

	return nil
}

// VerifyOTP verifies the OTP for the given email address and, on success,
// issues a session token. The passcode is consumed on first successful
// verification.
func (u *AuthUC) VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	isValid, normalized, err := utils.NormalizeEmail(email)
	if err != nil || !isValid {
		return nil, fmt.Errorf("%w: %s", auth.ErrInvalidEmail, email)
	}

	if err := u.otpStore.Verify(normalized, code); err != nil {
		return nil, err
	}

	// Get or create user
	user, err := u.authRepo.GetUserByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}

		user = &models.User{
			Email:    normalized,
			Role:     "passenger", // Default role is passenger
			IsActive: true,
		}
		if err := u.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID.String(),
		Role:      user.Role,
		CreatedAt: u.clock.Now(),
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	if err := u.authRepo.StoreSession(ctx, session, time.Until(session.ExpiresAt)); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// generateCode draws a 6-digit code uniformly from [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
