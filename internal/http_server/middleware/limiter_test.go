package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiterAllow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewSlidingWindowLimiterWithClock(time.Minute, 2, clock)

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "keys are limited independently")

	clock.Advance(61 * time.Second)
	assert.True(t, limiter.Allow("a"))
}

func TestSlidingWindowLimiterCleanup(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewSlidingWindowLimiterWithClock(time.Minute, 2, clock)
	limiter.Allow("a")
	clock.Advance(time.Minute)
	limiter.Allow("b")

	clock.Advance(90 * time.Second)
	limiter.cleanup()
	assert.Equal(t, 1, limiter.Keys())
	assert.NoError(t, limiter.Invoke(context.Background()))
	assert.NoError(t, limiter.Invoke(context.Background()))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewSlidingWindowLimiterWithClock(time.Minute, 1, clockwork.NewFakeClock())
	e := echo.New()
	e.Use(RateLimitMiddleware(limiter, EndpointKeyFunc))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
