package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/config"
	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	"github.com/KoshiiX/Layanan-1/internal/seed"
	"github.com/KoshiiX/Layanan-1/internal/store"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			SessionTTLDays: 1,
			BcryptCost:     4,
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	seedUsers, err := seed.Users(4)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	users, err := repository.NewSnapshotUserRepository(context.Background(), store.NewMemoryStore(), seedUsers)
	if err != nil {
		t.Fatalf("user repo: %v", err)
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{
		UserRepo:       users,
		RevocationList: auth.NewMemoryRevocationList(),
	})
	return svc, users
}

func TestRegisterAssignsUserRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Siti Aminah",
		NIK:      "3171234567890123",
		Email:    "siti@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("new accounts must get the user role, got %q", user.Role)
	}
	if user.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if user.PasswordHash == "rahasia123" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterRejectsDuplicateNIK(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	before, err := users.ListByRole(ctx, domain.RoleUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	// Seeded citizen already holds this NIK.
	_, err = svc.Register(ctx, RegisterInput{
		Name:     "Impostor",
		NIK:      "3171000000000002",
		Email:    "other@example.com",
		Password: "whatever1",
	})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}

	after, err := users.ListByRole(ctx, domain.RoleUser)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("roster changed on failed registration: %d -> %d", len(before), len(after))
	}
}

func TestLoginByEmailAndNIK(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	for _, identifier := range []string{"admin@kelurahan.id", "3171000000000001"} {
		user, token, _, err := svc.Login(ctx, identifier, "admin123")
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if user.Role != domain.RoleAdmin {
			t.Fatalf("expected admin account, got role %q", user.Role)
		}
		if token == "" {
			t.Fatal("expected a session token")
		}
	}
}

func TestLoginFailureIsOpaque(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, wrongPass := svc.Login(ctx, "admin@kelurahan.id", "salah")
	_, _, _, unknownUser := svc.Login(ctx, "nobody@example.com", "salah")

	for _, err := range []error{wrongPass, unknownUser} {
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "UNAUTHORIZED" {
			t.Fatalf("expected UNAUTHORIZED, got %v", err)
		}
		if domainErr.Message != "login failed" {
			t.Fatalf("failure message must not leak the cause: %q", domainErr.Message)
		}
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, token, _, err := svc.Login(ctx, "john@example.com", "user123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := svc.Logout(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		t.Fatalf("logout: %v", err)
	}
	revoked, err := svc.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		t.Fatalf("is revoked: %v", err)
	}
	if !revoked {
		t.Fatal("token must be revoked after logout")
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _, _, err := svc.Login(ctx, "john@example.com", "user123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong-current", "baru12345"); err == nil {
		t.Fatal("expected change with wrong current password to fail")
	}
	if err := svc.ChangePassword(ctx, user.ID, "user123", "baru12345"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "john@example.com", "baru12345"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "john@example.com", "user123"); err == nil {
		t.Fatal("old password must stop working")
	}
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, _, _, err := svc.Login(ctx, "john@example.com", "user123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	phone := "081298765432"
	updated, err := svc.UpdateProfile(ctx, user.ID, domain.ProfileUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone not updated: %q", updated.Phone)
	}
	if updated.Name != user.Name {
		t.Fatalf("name must stay unchanged, got %q", updated.Name)
	}
	if updated.NIK != user.NIK {
		t.Fatal("nik must never change via profile update")
	}
}

func TestListCitizensExcludesAdmins(t *testing.T) {
	svc, _ := newTestAuthService(t)

	citizens, err := svc.ListCitizens(context.Background())
	if err != nil {
		t.Fatalf("list citizens: %v", err)
	}
	for _, citizen := range citizens {
		if citizen.Role != domain.RoleUser {
			t.Fatalf("directory leaked non-citizen account %q", citizen.Email)
		}
	}
	if len(citizens) == 0 {
		t.Fatal("seeded citizen missing from directory")
	}
}
