package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/events"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	"github.com/KoshiiX/Layanan-1/internal/seed"
	"github.com/KoshiiX/Layanan-1/internal/store"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

func newTestNewsService(t *testing.T) *NewsService {
	t.Helper()
	news, err := repository.NewSnapshotNewsRepository(context.Background(), store.NewMemoryStore(), seed.News())
	if err != nil {
		t.Fatalf("news repo: %v", err)
	}
	return NewNewsService(news, events.NewInMemoryDispatcher())
}

func TestNewsCreateDefaultsDateToToday(t *testing.T) {
	svc := newTestNewsService(t)

	item, err := svc.Create(context.Background(), "admin-1", NewsInput{
		Title:       "Gotong Royong Minggu Ini",
		Description: "Kerja bakti lingkungan RW 05",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Date != domain.FormatDate(time.Now()) {
		t.Fatalf("missing date must default to today, got %q", item.Date)
	}
	if item.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestNewsCreateValidation(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	var domainErr *apperrors.DomainError
	_, err := svc.Create(ctx, "admin-1", NewsInput{Title: " ", Description: "x"})
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED for blank title, got %v", err)
	}
	_, err = svc.Create(ctx, "admin-1", NewsInput{Title: "t", Description: "x", Date: "03-01-2026"})
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED for malformed date, got %v", err)
	}
}

func TestNewsListNewestFirst(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", NewsInput{
		Title:       "Pengumuman Terbaru",
		Description: "Isi pengumuman",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected seeded 3 plus 1 created, got %d", len(items))
	}
	if items[0].ID != created.ID {
		t.Fatalf("newest announcement must come first, got %q", items[0].Title)
	}
}

func TestNewsDeleteRemovesExactlyOne(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	before, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := svc.Delete(ctx, "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	after, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d items, got %d", len(before)-1, len(after))
	}
	for _, item := range after {
		if item.ID == "2" {
			t.Fatal("deleted announcement still listed")
		}
	}
	// The remaining items keep their order.
	if after[0].ID != "1" || after[1].ID != "3" {
		t.Fatalf("unexpected order after delete: %q, %q", after[0].ID, after[1].ID)
	}

	var domainErr *apperrors.DomainError
	if err := svc.Delete(ctx, "2"); !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND deleting twice, got %v", err)
	}
}

func TestNewsUpdateEditsInPlace(t *testing.T) {
	svc := newTestNewsService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "3", NewsInput{
		Title:       "Jam Operasional Diperbarui",
		Description: "Kelurahan kini buka sampai 17:00",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Jam Operasional Diperbarui" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	// Date untouched when not supplied.
	if updated.Date != "2026-01-01" {
		t.Fatalf("date must stay unchanged, got %q", updated.Date)
	}

	fetched, err := svc.Get(ctx, "3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Title != updated.Title {
		t.Fatal("update not persisted")
	}
}
