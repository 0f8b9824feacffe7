package gateway

import (
	"context"
	"fmt"

	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// SendOTPEmail publishes an OTP email job to the mailer topic. The publish
// runs in a goroutine so the caller's deadline is honored; a timed-out
// dispatch is reported as a failure even if the publish later completes.
func (g *AuthGW) SendOTPEmail(ctx context.Context, job *models.OTPEmailJob) error {
	done := make(chan error, 1)
	go func() {
		done <- g.producer.Publish(constants.TopicOTPEmail, job)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish OTP email job: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("OTP email dispatch timed out: %w", ctx.Err())
	}
}
