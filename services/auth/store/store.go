package store

import (
	"strings"
	"sync"
	"time"

	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/auth"
)

// Store holds pending one-time passcodes in memory, one per email address.
// Records expire after their TTL; a background sweeper reclaims abandoned
// records so the map does not grow without bound.
type Store struct {
	mu      sync.Mutex
	records map[string]models.OTP
	clock   auth.Clock

	stopOnce sync.Once
	done     chan struct{}
}

// NewStore creates a new OTP store. A nil clock defaults to wall-clock time.
func NewStore(clock auth.Clock) *Store {
	if clock == nil {
		clock = auth.RealClock()
	}
	return &Store{
		records: make(map[string]models.OTP),
		clock:   clock,
		done:    make(chan struct{}),
	}
}

// Put stores the record, overwriting any pending passcode for the same email.
// A re-issued passcode invalidates the previous one.
func (s *Store) Put(otp models.OTP) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[otp.Email] = otp
}

// Verify consumes the pending passcode for email if candidate matches.
// An expired record is deleted regardless of the candidate; a mismatch keeps
// the record so the caller may retry until expiry. A match deletes the
// record, making the passcode single-use.
func (s *Store) Verify(email, candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	otp, exists := s.records[email]
	if !exists {
		return auth.ErrOTPNotFound
	}

	if s.clock.Now().After(otp.ExpiresAt) {
		delete(s.records, email)
		return auth.ErrOTPExpired
	}

	if otp.Code != strings.TrimSpace(candidate) {
		return auth.ErrOTPMismatch
	}

	delete(s.records, email)
	return nil
}

// Get returns the pending record for email, if any
func (s *Store) Get(email string) (models.OTP, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	otp, exists := s.records[email]
	return otp, exists
}

// Len returns the number of pending records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Sweep deletes every record past its expiry and returns the number removed
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for email, otp := range s.records {
		if otp.ExpiresAt.Before(now) {
			delete(s.records, email)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until Close is called.
// The sweeper holds the store lock only for the duration of a single pass.
func (s *Store) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := s.Sweep(); removed > 0 {
					logger.Debug("Swept expired OTP records",
						logger.Int("removed", removed))
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Close stops the background sweeper
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}
