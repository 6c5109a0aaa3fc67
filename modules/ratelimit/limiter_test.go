package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// newTestClient connects to a local Redis or skips the test.
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		t.Skip("Redis not available, skipping integration test")
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSlidingWindowLimiter_Allow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	prefix := "test:finalghecko:allow:"
	defer client.Del(ctx, prefix+"owner:1", prefix+"owner:1:counter")

	limiter := NewSlidingWindowLimiter(client, Config{RequestsPerWindow: 3, WindowSize: time.Minute}, prefix)

	for i := 0; i < 3; i++ {
		result, err := limiter.Allow(ctx, "owner:1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !result.Allowed {
			t.Errorf("Request %d should be allowed", i+1)
		}
		if result.Remaining != 3-i-1 {
			t.Errorf("Expected %d remaining, got %d", 3-i-1, result.Remaining)
		}
	}

	result, err := limiter.Allow(ctx, "owner:1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Allowed {
		t.Error("4th request should be denied")
	}
	if result.RetryAfter <= 0 {
		t.Error("RetryAfter should be positive")
	}
}

func TestSlidingWindowLimiter_KeysAreIndependent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	prefix := "test:finalghecko:keys:"
	defer client.Del(ctx, prefix+"a", prefix+"a:counter", prefix+"b", prefix+"b:counter")

	limiter := NewSlidingWindowLimiter(client, Config{RequestsPerWindow: 1, WindowSize: time.Minute}, prefix)

	if r, err := limiter.Allow(ctx, "a"); err != nil || !r.Allowed {
		t.Fatalf("first request for a should pass: %v %+v", err, r)
	}
	if r, err := limiter.Allow(ctx, "b"); err != nil || !r.Allowed {
		t.Fatalf("first request for b should pass: %v %+v", err, r)
	}
	if r, err := limiter.Allow(ctx, "a"); err != nil || r.Allowed {
		t.Fatalf("second request for a should be denied: %v %+v", err, r)
	}
}

func TestSlidingWindowLimiter_WindowSlides(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	prefix := "test:finalghecko:slide:"
	defer client.Del(ctx, prefix+"k", prefix+"k:counter")

	limiter := NewSlidingWindowLimiter(client, Config{RequestsPerWindow: 1, WindowSize: time.Minute}, prefix)
	start := time.Now()
	limiter.now = func() time.Time { return start }

	if r, _ := limiter.Allow(ctx, "k"); !r.Allowed {
		t.Fatal("first request should pass")
	}
	limiter.now = func() time.Time { return start.Add(61 * time.Second) }
	if r, err := limiter.Allow(ctx, "k"); err != nil || !r.Allowed {
		t.Fatalf("request after the window should pass: %v %+v", err, r)
	}
}
