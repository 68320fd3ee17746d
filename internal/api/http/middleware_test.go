package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/config"
)

func TestRequestTimeoutReachesHandlerContext(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{RequestTimeoutSeconds: 5}}

	app := fiber.New()
	app.Use(requestTimeout(cfg))
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !hasDeadline {
		t.Fatal("configured request timeout must reach the handler context")
	}
}

func TestRequestTimeoutDisabled(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{RequestTimeoutSeconds: 0}}

	app := fiber.New()
	app.Use(requestTimeout(cfg))
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline = c.UserContext().Deadline()
		return c.SendString("ok")
	})

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if hasDeadline {
		t.Fatal("zero timeout must leave the context without a deadline")
	}
}
