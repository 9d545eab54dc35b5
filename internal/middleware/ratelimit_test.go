package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute, "test-under")

	for i := 1; i <= 5; i++ {
		allowed, count := limiter.isAllowed("203.0.113.7")
		if !allowed {
			t.Fatalf("Request %d should be allowed", i)
		}
		if count != i {
			t.Errorf("Expected count %d, got %d", i, count)
		}
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute, "test-over")

	for i := 0; i < 3; i++ {
		limiter.isAllowed("203.0.113.8")
	}

	if allowed, _ := limiter.isAllowed("203.0.113.8"); allowed {
		t.Error("Request over the limit should be blocked")
	}

	// A different client is unaffected
	if allowed, _ := limiter.isAllowed("203.0.113.9"); !allowed {
		t.Error("Other clients should not share the counter")
	}
}

func TestRateLimitMiddlewareResponse(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, "test-response")
	r := gin.New()
	r.Use(rateLimitMiddleware(limiter))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("First request should pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Expected Retry-After 60, got %q", got)
	}
	if got := w.Header().Get("X-RateLimit-Limit"); got != "1" {
		t.Errorf("Expected X-RateLimit-Limit 1, got %q", got)
	}
	if !strings.Contains(w.Body.String(), "rate_limit") {
		t.Errorf("Expected a rate limit problem body, got %s", w.Body.String())
	}
}

// TestRateLimiterConcurrentAccess verifies the limiter is safe under
// concurrent access.
// Run with: go test -race -count=1 ./internal/middleware/ -run TestRateLimiterConcurrentAccess
func TestRateLimiterConcurrentAccess(t *testing.T) {
	limiter := NewRateLimiter(100, time.Minute, "test-concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				// Mix of shared and distinct IPs to stress both paths
				ip := "192.168.1.1"
				if j%3 == 0 {
					ip = fmt.Sprintf("10.0.0.%d", id%10)
				}
				limiter.isAllowed(ip)
			}
		}(i)
	}
	wg.Wait()
}

// TestRateLimiterConcurrentWithCleanup verifies no race between request
// handling and the background cleanup goroutine.
func TestRateLimiterConcurrentWithCleanup(t *testing.T) {
	// Short window so cleanup runs during the test
	limiter := NewRateLimiter(5, 50*time.Millisecond, "test-cleanup-race")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				limiter.isAllowed(fmt.Sprintf("10.0.0.%d", id%10))
				if j%10 == 0 {
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()
}
