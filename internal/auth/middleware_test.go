package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	"github.com/KoshiiX/Layanan-1/internal/store"
)

// deadRedisClient points at a port nothing listens on, matching what
// the startup path holds when Redis is down.
func deadRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
}

func TestRevocationListFallsBackWithoutRedis(t *testing.T) {
	ctx := context.Background()
	list := NewRevocationListFor(ctx, deadRedisClient(), zap.NewNop())

	revoked, err := list.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("revocation check must work without redis: %v", err)
	}
	if revoked {
		t.Fatal("fresh token must not be revoked")
	}

	if err := list.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("revoke must work without redis: %v", err)
	}
	revoked, err = list.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("revocation check after revoke: %v", err)
	}
	if !revoked {
		t.Fatal("revoked token must be reported revoked")
	}
}

func TestHandleAuthenticatesWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	users, err := repository.NewSnapshotUserRepository(ctx, store.NewMemoryStore(), []domain.User{
		{ID: "u1", Name: "John Doe", NIK: "3171000000000002", Email: "john@example.com", Role: domain.RoleUser},
	})
	if err != nil {
		t.Fatalf("user repo: %v", err)
	}

	tokens := NewTokenManager("test-secret", time.Hour)
	list := NewRevocationListFor(ctx, deadRedisClient(), zap.NewNop())
	mw := NewMiddleware(tokens, users, list, "token")

	app := fiber.New()
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(principal.User.ID)
	})

	token, _, err := tokens.GenerateToken("u1", domain.RoleUser)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("authenticated request must succeed with redis down, got %d", resp.StatusCode)
	}
}

func TestPrincipalRemainingTTL(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	tokenStr, _, err := tokens.GenerateToken("u1", domain.RoleUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := tokens.ParseToken(tokenStr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	principal := &Principal{Claims: claims}
	ttl := principal.RemainingTTL()
	if ttl <= 59*time.Minute || ttl > time.Hour {
		t.Fatalf("unexpected remaining ttl %v", ttl)
	}

	var missing *Principal
	if missing.RemainingTTL() != 0 {
		t.Fatal("nil principal must report zero ttl")
	}
}
