package middleware_test

import (
	"testing"
	"time"

	"github.com/Memoyu/Mbill/internal/middleware"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("owner-a") {
			t.Fatalf("request %d denied inside the limit", i+1)
		}
	}
	if limiter.Allow("owner-a") {
		t.Fatal("request over the limit allowed")
	}
	if !limiter.Allow("owner-b") {
		t.Fatal("independent key denied")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, 20*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("owner-a") {
		t.Fatal("first request denied")
	}
	if limiter.Allow("owner-a") {
		t.Fatal("second request inside the window allowed")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("owner-a") {
		t.Fatal("request after the window expired denied")
	}
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, time.Minute)
	limiter.Stop()
	limiter.Stop()
}
