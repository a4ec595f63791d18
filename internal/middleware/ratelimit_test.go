// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/drafts/1/logo", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	RateLimitMiddleware(limiter)(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	middleware := RateLimitMiddleware(limiter)

	for request := 0; request < 2; request++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/drafts/1/logo", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)
		if w.Code == 429 {
			t.Fatalf("request %d should be allowed", request+1)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/drafts/1/logo", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	middleware(c)

	if w.Code != 429 {
		t.Errorf("third request should be limited, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("limited response should carry Retry-After")
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	middleware := RateLimitMiddleware(limiter)

	first := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(first)
	c1.Request = httptest.NewRequest("POST", "/api/drafts/1/logo", nil)
	c1.Request.RemoteAddr = "10.0.0.1:1234"
	middleware(c1)

	second := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(second)
	c2.Request = httptest.NewRequest("POST", "/api/drafts/1/logo", nil)
	c2.Request.RemoteAddr = "10.0.0.2:1234"
	middleware(c2)

	if second.Code == 429 {
		t.Error("different IP should have its own bucket")
	}
}

func TestAllowRefillsAfterInterval(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	if ok, _ := limiter.Allow("10.0.0.9"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := limiter.Allow("10.0.0.9"); ok {
		t.Fatal("second request should be limited")
	}

	time.Sleep(15 * time.Millisecond)
	if ok, _ := limiter.Allow("10.0.0.9"); !ok {
		t.Error("bucket should refill after the interval")
	}
}
