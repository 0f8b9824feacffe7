package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	httpHandler "github.com/tumpangan/tumpangan/services/bookings/handler/http"
)

// Handler coordinates the protocol handlers for the booking service
type Handler struct {
	bookingHandler *httpHandler.BookingHandler
	jwtConfig      models.JWTConfig
}

// NewHandler creates and initializes all handlers
func NewHandler(bookingHandler *httpHandler.BookingHandler, jwtConfig models.JWTConfig) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		jwtConfig:      jwtConfig,
	}
}

// RegisterRoutes registers the booking routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/bookings", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.jwtConfig.Secret),
	}))
	protected.POST("", h.bookingHandler.CreateBooking)
}
