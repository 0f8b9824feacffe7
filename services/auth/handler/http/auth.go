package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/internal/utils"
	"github.com/tumpangan/tumpangan/services/auth"
)

// AuthHandler handles HTTP requests for OTP authentication
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// GenerateOTP handles OTP issuance requests
func (h *AuthHandler) GenerateOTP(c echo.Context) error {
	var req models.OTPGenerateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP generation",
			logger.ErrorField(err),
			logger.String("endpoint", "GenerateOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	err := h.authUC.GenerateOTP(c.Request().Context(), req.Email, c.RealIP())
	if err != nil {
		var rateErr *auth.RateLimitError
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			return utils.BadRequestResponse(c, "Invalid email address")
		case errors.As(err, &rateErr):
			c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(rateErr.RetryAfter.Seconds())))
			return utils.TooManyRequestsResponse(c, rateErr.Error())
		case errors.Is(err, auth.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, "Too many OTP requests")
		case errors.Is(err, auth.ErrNotificationFailed):
			logger.Error("Failed to dispatch OTP notification",
				logger.ErrorField(err),
				logger.String("email", req.Email),
			)
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to send OTP")
		default:
			logger.Error("Failed to generate OTP",
				logger.ErrorField(err),
				logger.String("email", req.Email),
			)
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to generate OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Email and code are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			return utils.BadRequestResponse(c, "Invalid email address")
		case errors.Is(err, auth.ErrOTPNotFound):
			return utils.NotFoundResponse(c, "OTP not found")
		case errors.Is(err, auth.ErrOTPExpired):
			return utils.UnauthorizedResponse(c, "OTP has expired")
		case errors.Is(err, auth.ErrOTPMismatch):
			return utils.UnauthorizedResponse(c, "Invalid OTP code")
		default:
			logger.Error("Failed to verify OTP",
				logger.ErrorField(err),
				logger.String("email", req.Email),
			)
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to verify OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}
