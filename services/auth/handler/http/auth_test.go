package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/auth"
	"github.com/tumpangan/tumpangan/services/auth/mocks"
)

func setupTest(t *testing.T) (*echo.Echo, *mocks.MockAuthUC, *AuthHandler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	e := echo.New()
	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)
	return e, mockUC, handler
}

func doRequest(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGenerateOTP_HandlerSuccess(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "rider@example.com", gomock.Any()).
		Return(nil)

	c, rec := doRequest(e, `{"email":"rider@example.com"}`)
	require.NoError(t, handler.GenerateOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OTP sent successfully")
}

func TestGenerateOTP_HandlerMissingEmail(t *testing.T) {
	e, _, handler := setupTest(t)

	c, rec := doRequest(e, `{}`)
	require.NoError(t, handler.GenerateOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is required")
}

func TestGenerateOTP_HandlerInvalidEmail(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "not-an-email", gomock.Any()).
		Return(auth.ErrInvalidEmail)

	c, rec := doRequest(e, `{"email":"not-an-email"}`)
	require.NoError(t, handler.GenerateOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email address")
}

func TestGenerateOTP_HandlerRateLimited(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "rider@example.com", gomock.Any()).
		Return(&auth.RateLimitError{RetryAfter: 30 * time.Minute})

	c, rec := doRequest(e, `{"email":"rider@example.com"}`)
	require.NoError(t, handler.GenerateOTP(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1800", rec.Header().Get("Retry-After"))
}

func TestGenerateOTP_HandlerNotificationFailure(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "rider@example.com", gomock.Any()).
		Return(auth.ErrNotificationFailed)

	c, rec := doRequest(e, `{"email":"rider@example.com"}`)
	require.NoError(t, handler.GenerateOTP(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send OTP")
}

func TestVerifyOTP_HandlerSuccess(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	resp := &models.AuthResponse{
		Token:  "a.b.c",
		UserID: "user-1",
		Role:   "passenger",
	}
	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "rider@example.com", "123456").
		Return(resp, nil)

	c, rec := doRequest(e, `{"email":"rider@example.com","code":"123456"}`)
	require.NoError(t, handler.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a.b.c")
}

func TestVerifyOTP_HandlerMissingFields(t *testing.T) {
	e, _, handler := setupTest(t)

	c, rec := doRequest(e, `{"email":"rider@example.com"}`)
	require.NoError(t, handler.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email and code are required")
}

func TestVerifyOTP_HandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "unknown email",
			err:      auth.ErrOTPNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "OTP not found",
		},
		{
			name:     "expired code",
			err:      auth.ErrOTPExpired,
			wantCode: http.StatusUnauthorized,
			wantBody: "OTP has expired",
		},
		{
			name:     "wrong code",
			err:      auth.ErrOTPMismatch,
			wantCode: http.StatusUnauthorized,
			wantBody: "Invalid OTP code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC, handler := setupTest(t)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "rider@example.com", "123456").
				Return(nil, tt.err)

			c, rec := doRequest(e, `{"email":"rider@example.com","code":"123456"}`)
			require.NoError(t, handler.VerifyOTP(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
