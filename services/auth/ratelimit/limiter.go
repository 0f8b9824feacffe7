package ratelimit

import (
	"sync"
	"time"

	"github.com/tumpangan/tumpangan/services/auth"
)

type window struct {
	count       int
	windowStart time.Time
}

// Decision reports the outcome of an admission check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is a per-source fixed-window rate limiter. A window admits at most
// max requests; once elapsed, the next request starts a fresh window. Fixed
// windows allow bursts at window boundaries, which is acceptable for abuse
// deterrence.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	length  time.Duration
	clock   auth.Clock

	stopOnce sync.Once
	done     chan struct{}
}

// NewLimiter creates a limiter admitting max requests per length per source.
// A nil clock defaults to wall-clock time.
func NewLimiter(max int, length time.Duration, clock auth.Clock) *Limiter {
	if clock == nil {
		clock = auth.RealClock()
	}
	return &Limiter{
		windows: make(map[string]*window),
		max:     max,
		length:  length,
		clock:   clock,
		done:    make(chan struct{}),
	}
}

// Admit checks whether sourceKey may issue another request. The read and
// increment happen under one lock so concurrent callers cannot both take the
// last slot.
func (l *Limiter) Admit(sourceKey string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[sourceKey]
	if !exists || now.Sub(w.windowStart) >= l.length {
		w = &window{windowStart: now}
		l.windows[sourceKey] = w
	}

	if w.count >= l.max {
		return Decision{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: w.windowStart.Add(l.length).Sub(now),
		}
	}

	w.count++
	return Decision{
		Allowed:   true,
		Remaining: l.max - w.count,
	}
}

// Prune removes windows that have fully elapsed
func (l *Limiter) Prune() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.Sub(w.windowStart) >= l.length {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// StartCleanup prunes stale windows on the given interval until Close is called
func (l *Limiter) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Prune()
			case <-l.done:
				return
			}
		}
	}()
}

// Close stops the background cleanup
func (l *Limiter) Close() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
