package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers and logs the stack trace
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())))

					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, fmt.Sprintf("internal server error: %v", r))
				}
			}()

			return next(c)
		}
	}
}
