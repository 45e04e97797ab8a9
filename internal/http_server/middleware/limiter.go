// Package middleware
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter allows at most maxRequests per key inside any window of windowSize
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
	clock          clockwork.Clock
	stop           chan struct{}
	stopOnce       sync.Once
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return NewSlidingWindowLimiterWithClock(windowSize, maxRequests, clockwork.NewRealClock())
}

func NewSlidingWindowLimiterWithClock(windowSize time.Duration, maxRequests int, clock clockwork.Clock) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
		clock:          clock,
		stop:           make(chan struct{}),
	}
}

// Allow records a request for key and reports whether it fits in the window
func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	if _, exists := l.requestRecords[key]; !exists {
		l.requestRecords[key] = make([]time.Time, 0, l.maxRequests*2)
	}

	windowStart := now.Add(-l.windowSize)
	records := l.requestRecords[key]
	for len(records) > 0 && records[0].Before(windowStart) {
		records = records[1:]
	}

	if len(records) >= l.maxRequests {
		l.requestRecords[key] = records
		return false
	}

	records = append(records, now)
	l.requestRecords[key] = records
	return true
}

func (l *SlidingWindowLimiter) StartCleanup(interval time.Duration) {
	ticker := l.clock.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-l.stop:
				return
			case <-ticker.Chan():
				l.cleanup()
			}
		}
	}()
}

func (l *SlidingWindowLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.clock.Now().Add(-2 * l.windowSize)

	for key, records := range l.requestRecords {
		if len(records) == 0 || records[len(records)-1].Before(threshold) {
			delete(l.requestRecords, key)
		}
	}
}

func (l *SlidingWindowLimiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requestRecords)
}

// Invoke stops the cleanup loop
func (l *SlidingWindowLimiter) Invoke(_ context.Context) error {
	l.stopOnce.Do(func() { close(l.stop) })
	return nil
}

func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := keyFunc(c)

			if !limiter.Allow(key) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "too many requests, please try again later",
					"data":    nil,
				})
			}

			return next(c)
		}
	}
}

func IPKeyFunc(c echo.Context) string {
	return c.RealIP()
}

func EndpointKeyFunc(c echo.Context) string {
	return c.Path()
}

func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
