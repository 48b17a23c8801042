package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowWithinBurst(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 3}

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("ip|DEFAULT", rule)
		if !allowed {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	allowed, retryAfter := limiter.Allow("ip|DEFAULT", rule)
	if allowed {
		t.Fatalf("request beyond burst should be refused")
	}
	if retryAfter <= 0 {
		t.Fatalf("refusal should report a positive retry-after, got %v", retryAfter)
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 2, Burst: 1}

	if allowed, _ := limiter.Allow("ip|DEFAULT", rule); !allowed {
		t.Fatalf("first request should pass")
	}
	if allowed, _ := limiter.Allow("ip|DEFAULT", rule); allowed {
		t.Fatalf("bucket should be empty")
	}

	now = now.Add(time.Second)
	if allowed, _ := limiter.Allow("ip|DEFAULT", rule); !allowed {
		t.Fatalf("bucket should refill after a second at rate 2/s")
	}
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("a|DEFAULT", rule); !allowed {
		t.Fatalf("first key should pass")
	}
	if allowed, _ := limiter.Allow("b|DEFAULT", rule); !allowed {
		t.Fatalf("second key has its own bucket")
	}
}

func TestRateLimiterZeroRuleIsUnlimited(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("ip|DEFAULT", RateLimitRule{}); !allowed {
			t.Fatalf("zero rule should never limit")
		}
	}
}
