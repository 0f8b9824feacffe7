package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/auth"
	"github.com/tumpangan/tumpangan/services/auth/mocks"
	"github.com/tumpangan/tumpangan/services/auth/ratelimit"
	"github.com/tumpangan/tumpangan/services/auth/store"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() *models.Config {
	return &models.Config{
		OTP: models.OTPConfig{
			TTLMinutes:       10,
			SweepSeconds:     60,
			RateLimitMax:     3,
			RateWindowMinute: 60,
			NotifyTimeoutSec: 10,
		},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tumpangan-test",
		},
	}
}

func newTestUC(t *testing.T, clock *fakeClock) (*AuthUC, *store.Store, *mocks.MockAuthRepo, *mocks.MockAuthGW) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := testConfig()
	otpStore := store.NewStore(clock)
	limiter := ratelimit.NewLimiter(cfg.OTP.RateLimitMax,
		time.Duration(cfg.OTP.RateWindowMinute)*time.Minute, clock)

	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	uc := NewAuthUC(cfg, otpStore, limiter, mockRepo, mockGW, clock)
	return uc, otpStore, mockRepo, mockGW
}

func TestGenerateOTP_Success(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, _, mockGW := newTestUC(t, clock)

	var sentJob *models.OTPEmailJob
	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *models.OTPEmailJob) error {
			sentJob = job
			return nil
		})

	err := uc.GenerateOTP(context.Background(), "Rider@Example.com", "10.0.0.1")
	require.NoError(t, err)

	// The stored record matches what was sent, keyed by the normalized email
	otp, exists := otpStore.Get("rider@example.com")
	require.True(t, exists)
	assert.Equal(t, sentJob.Code, otp.Code)
	assert.Len(t, otp.Code, 6)
	assert.Equal(t, clock.Now().Add(10*time.Minute), otp.ExpiresAt)
}

func TestGenerateOTP_InvalidEmail(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, _, _ := newTestUC(t, clock)

	err := uc.GenerateOTP(context.Background(), "not-an-email", "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrInvalidEmail)
	assert.Equal(t, 0, otpStore.Len())
}

func TestGenerateOTP_NotificationFailureStoresNothing(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, _, mockGW := newTestUC(t, clock)

	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), gomock.Any()).
		Return(errors.New("queue unreachable"))

	err := uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrNotificationFailed)

	// A failed send must not leave a live passcode behind
	assert.Equal(t, 0, otpStore.Len())
}

func TestGenerateOTP_RateLimited(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, _, _, mockGW := newTestUC(t, clock)

	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1"))
	}

	err := uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrRateLimited)

	var rateErr *auth.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, time.Hour, rateErr.RetryAfter)
}

func TestGenerateOTP_RateLimitCountsFailedSends(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, _, _, mockGW := newTestUC(t, clock)

	// Issuance attempts count against the budget even when the send fails
	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), gomock.Any()).
		Return(errors.New("queue unreachable")).
		Times(3)

	for i := 0; i < 3; i++ {
		err := uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1")
		assert.ErrorIs(t, err, auth.ErrNotificationFailed)
	}

	err := uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1")
	assert.ErrorIs(t, err, auth.ErrRateLimited)
}

func TestGenerateOTP_ReissueInvalidatesPrevious(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, _, mockGW := newTestUC(t, clock)

	var codes []string
	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *models.OTPEmailJob) error {
			codes = append(codes, job.Code)
			return nil
		}).
		Times(2)

	require.NoError(t, uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1"))
	require.NoError(t, uc.GenerateOTP(context.Background(), "rider@example.com", "10.0.0.1"))

	otp, exists := otpStore.Get("rider@example.com")
	require.True(t, exists)
	assert.Equal(t, codes[1], otp.Code)
	assert.Equal(t, 1, otpStore.Len())
}

func TestVerifyOTP_ExistingUser(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, mockRepo, _ := newTestUC(t, clock)

	otpStore.Put(models.OTP{
		Email:     "rider@example.com",
		Code:      "123456",
		IssuedAt:  clock.Now(),
		ExpiresAt: clock.Now().Add(10 * time.Minute),
	})

	user := &models.User{
		Email:    "rider@example.com",
		Role:     "passenger",
		IsActive: true,
	}
	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rider@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		StoreSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := uc.VerifyOTP(context.Background(), "Rider@Example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "passenger", resp.Role)

	// The passcode is consumed
	assert.Equal(t, 0, otpStore.Len())
}

func TestVerifyOTP_CreatesUnknownUser(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, mockRepo, _ := newTestUC(t, clock)

	otpStore.Put(models.OTP{
		Email:     "new@example.com",
		Code:      "123456",
		IssuedAt:  clock.Now(),
		ExpiresAt: clock.Now().Add(10 * time.Minute),
	})

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, auth.ErrUserNotFound)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, "passenger", user.Role)
			assert.True(t, user.IsActive)
			return nil
		})
	mockRepo.EXPECT().
		StoreSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := uc.VerifyOTP(context.Background(), "new@example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestVerifyOTP_WrongCodeAllowsRetry(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, mockRepo, _ := newTestUC(t, clock)

	otpStore.Put(models.OTP{
		Email:     "rider@example.com",
		Code:      "123456",
		IssuedAt:  clock.Now(),
		ExpiresAt: clock.Now().Add(10 * time.Minute),
	})

	_, err := uc.VerifyOTP(context.Background(), "rider@example.com", "999999")
	assert.ErrorIs(t, err, auth.ErrOTPMismatch)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rider@example.com").
		Return(&models.User{Email: "rider@example.com", Role: "passenger"}, nil)
	mockRepo.EXPECT().
		StoreSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err = uc.VerifyOTP(context.Background(), "rider@example.com", "123456")
	assert.NoError(t, err)
}

func TestVerifyOTP_Expired(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, otpStore, _, _ := newTestUC(t, clock)

	otpStore.Put(models.OTP{
		Email:     "rider@example.com",
		Code:      "123456",
		IssuedAt:  clock.Now(),
		ExpiresAt: clock.Now().Add(10 * time.Minute),
	})

	clock.Advance(11 * time.Minute)

	_, err := uc.VerifyOTP(context.Background(), "rider@example.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPExpired)
}

func TestVerifyOTP_NoPendingCode(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	uc, _, _, _ := newTestUC(t, clock)

	_, err := uc.VerifyOTP(context.Background(), "rider@example.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestGenerateCode_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
