package web

import (
	"net/http/httptest"
	"testing"
	"time"

	"contentsift/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func setupRequestIDApp() *fiber.App {
	app := fiber.New()
	app.Use(requestid.New(RequestIDConfig()))
	app.Use(RequestIDToContextMiddleware())
	return app
}

func TestRequestIDToContext_ExtractsIDFromFiber(t *testing.T) {
	app := setupRequestIDApp()

	var capturedRequestID string
	app.Get("/test", func(c *fiber.Ctx) error {
		capturedRequestID = log.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if capturedRequestID == "" {
		t.Error("request_id should be extracted from Fiber's requestid middleware")
	}

	headerID := resp.Header.Get("X-Request-ID")
	if headerID == "" {
		t.Error("X-Request-ID header should be set in response")
	}

	if headerID != capturedRequestID {
		t.Errorf("response header = %q, context = %q, should match", headerID, capturedRequestID)
	}
}

func TestRequestIDToContext_UsesProvidedID(t *testing.T) {
	app := setupRequestIDApp()

	var capturedRequestID string
	app.Get("/test", func(c *fiber.Ctx) error {
		capturedRequestID = log.RequestIDFromContext(c.UserContext())
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "custom-trace-id-123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if capturedRequestID != "custom-trace-id-123" {
		t.Errorf("request_id = %q, want custom-trace-id-123", capturedRequestID)
	}
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(3, time.Minute)

	// Act & Assert
	for i := 0; i < 3; i++ {
		if !rl.Allow("203.0.113.7") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("203.0.113.7") {
		t.Error("fourth request should be denied")
	}
}

func TestRateLimiter_LimitsPerIP(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(1, time.Minute)

	// Act
	first := rl.Allow("203.0.113.7")
	otherIP := rl.Allow("203.0.113.8")
	second := rl.Allow("203.0.113.7")

	// Assert
	if !first || !otherIP {
		t.Error("first request per IP should be allowed")
	}
	if second {
		t.Error("second request from the same IP should be denied")
	}
}

func TestRateLimiter_WindowExpiry_AllowsAgain(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(1, 20*time.Millisecond)

	// Act
	first := rl.Allow("203.0.113.7")
	time.Sleep(30 * time.Millisecond)
	afterWindow := rl.Allow("203.0.113.7")

	// Assert
	if !first {
		t.Error("first request should be allowed")
	}
	if !afterWindow {
		t.Error("request after window expiry should be allowed")
	}
}

func TestRateLimiterMiddleware_Returns429WhenExceeded(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(1, time.Minute)
	app := fiber.New()
	app.Post("/limited", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Act
	first, err := app.Test(httptest.NewRequest("POST", "/limited", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	first.Body.Close()

	second, err := app.Test(httptest.NewRequest("POST", "/limited", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	second.Body.Close()

	// Assert
	if first.StatusCode != fiber.StatusOK {
		t.Errorf("first status: got %v, want 200", first.StatusCode)
	}
	if second.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("second status: got %v, want 429", second.StatusCode)
	}
}
