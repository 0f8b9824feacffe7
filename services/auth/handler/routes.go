package handler

import (
	"github.com/labstack/echo/v4"
	httpHandler "github.com/tumpangan/tumpangan/services/auth/handler/http"
)

// Handler coordinates the protocol handlers for the auth service
type Handler struct {
	authHandler *httpHandler.AuthHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *httpHandler.AuthHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/generate", h.authHandler.GenerateOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
}
