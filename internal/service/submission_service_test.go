package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KoshiiX/Layanan-1/internal/domain"
	"github.com/KoshiiX/Layanan-1/internal/events"
	"github.com/KoshiiX/Layanan-1/internal/repository"
	"github.com/KoshiiX/Layanan-1/internal/store"
	apperrors "github.com/KoshiiX/Layanan-1/pkg/util"
)

func newTestSubmissionService(t *testing.T) *SubmissionService {
	t.Helper()
	ctx := context.Background()
	snapshots := store.NewMemoryStore()

	submissions, err := repository.NewSnapshotSubmissionRepository(ctx, snapshots, nil)
	if err != nil {
		t.Fatalf("submission repo: %v", err)
	}
	history, err := repository.NewSnapshotStatusChangeRepository(ctx, snapshots)
	if err != nil {
		t.Fatalf("history repo: %v", err)
	}
	return NewSubmissionService(SubmissionDependencies{
		SubmissionRepo: submissions,
		HistoryRepo:    history,
		Dispatcher:     events.NewInMemoryDispatcher(),
	})
}

func testCitizen() *domain.User {
	return &domain.User{ID: "citizen-1", Name: "John Doe", Role: domain.RoleUser}
}

func testAdmin() *domain.User {
	return &domain.User{ID: "admin-1", Name: "Admin Kelurahan", Role: domain.RoleAdmin}
}

func TestCreateForcesPendingAndToday(t *testing.T) {
	svc := newTestSubmissionService(t)

	submission, err := svc.Create(context.Background(), testCitizen(), SubmissionCreateInput{
		ServiceType: "ktp",
		Description: "Pembuatan KTP Baru",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if submission.Status != domain.SubmissionStatusPending {
		t.Fatalf("new submissions must start pending, got %q", submission.Status)
	}
	if submission.SubmittedDate != domain.FormatDate(time.Now()) {
		t.Fatalf("submitted date must be today, got %q", submission.SubmittedDate)
	}
	if submission.ServiceType != "KTP" {
		t.Fatalf("service type key must map to display name, got %q", submission.ServiceType)
	}
	if submission.CompletedDate != nil || submission.DocumentURL != nil {
		t.Fatal("fresh submission must have no completion fields")
	}
}

func TestCreateRequiresDescription(t *testing.T) {
	svc := newTestSubmissionService(t)

	_, err := svc.Create(context.Background(), testCitizen(), SubmissionCreateInput{
		ServiceType: "kk",
		Description: "   ",
	})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestCreateRejectsUnknownServiceType(t *testing.T) {
	svc := newTestSubmissionService(t)

	_, err := svc.Create(context.Background(), testCitizen(), SubmissionCreateInput{
		ServiceType: "something-else",
		Description: "Permohonan lain",
	})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED for unknown service type, got %v", err)
	}
}

func TestApproveRequiresProcessingAndDocument(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()

	submission, err := svc.Create(ctx, testCitizen(), SubmissionCreateInput{
		ServiceType: "ktp",
		Description: "Pembuatan KTP Baru",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Approving straight from pending skips review and must be refused.
	_, err = svc.Approve(ctx, admin, submission.ID, "https://example.com/doc.pdf")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT for pending->approved, got %v", err)
	}

	if _, err := svc.Process(ctx, admin, submission.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	_, err = svc.Approve(ctx, admin, submission.ID, "  ")
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED without document, got %v", err)
	}

	approved, err := svc.Approve(ctx, admin, submission.ID, "https://example.com/doc.pdf")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.SubmissionStatusApproved {
		t.Fatalf("expected approved, got %q", approved.Status)
	}
	if approved.CompletedDate == nil || *approved.CompletedDate != domain.FormatDate(time.Now()) {
		t.Fatalf("approval must stamp today's completed date, got %v", approved.CompletedDate)
	}
	if approved.DocumentURL == nil || *approved.DocumentURL != "https://example.com/doc.pdf" {
		t.Fatalf("approval must record the document, got %v", approved.DocumentURL)
	}
}

func TestRejectStampsCompletionWithoutDocument(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()

	submission, err := svc.Create(ctx, testCitizen(), SubmissionCreateInput{
		ServiceType: "skck",
		Description: "Permohonan SKCK",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Process(ctx, admin, submission.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	rejected, err := svc.Reject(ctx, admin, submission.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.SubmissionStatusRejected {
		t.Fatalf("expected rejected, got %q", rejected.Status)
	}
	if rejected.CompletedDate == nil {
		t.Fatal("rejection must stamp a completed date")
	}
	if rejected.DocumentURL != nil {
		t.Fatal("rejection must not attach a document")
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()

	submission, err := svc.Create(ctx, testCitizen(), SubmissionCreateInput{
		ServiceType: "domisili",
		Description: "Surat domisili",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Process(ctx, admin, submission.ID); err != nil {
		t.Fatalf("process: %v", err)
	}
	if _, err := svc.Reject(ctx, admin, submission.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}

	var domainErr *apperrors.DomainError
	if _, err := svc.Process(ctx, admin, submission.ID); !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT reopening a rejected submission, got %v", err)
	}
	if _, err := svc.Approve(ctx, admin, submission.ID, "https://example.com/doc.pdf"); !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT approving a rejected submission, got %v", err)
	}
}

func TestTransitionHistoryIsRecorded(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()
	citizen := testCitizen()

	submission, err := svc.Create(ctx, citizen, SubmissionCreateInput{
		ServiceType: "ktp",
		Description: "Pembuatan KTP Baru",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Process(ctx, admin, submission.ID); err != nil {
		t.Fatalf("process: %v", err)
	}
	if _, err := svc.Approve(ctx, admin, submission.ID, "https://example.com/doc.pdf"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	_, history, err := svc.GetForUser(ctx, citizen.ID, submission.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].OldStatus != domain.SubmissionStatusPending || history[0].NewStatus != domain.SubmissionStatusProcessing {
		t.Fatalf("unexpected first transition: %+v", history[0])
	}
	if history[1].OldStatus != domain.SubmissionStatusProcessing || history[1].NewStatus != domain.SubmissionStatusApproved {
		t.Fatalf("unexpected second transition: %+v", history[1])
	}
	if history[0].ActorID != admin.ID {
		t.Fatalf("history must record the acting admin, got %q", history[0].ActorID)
	}
}

func TestGetForUserEnforcesOwnership(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()

	submission, err := svc.Create(ctx, testCitizen(), SubmissionCreateInput{
		ServiceType: "ktp",
		Description: "Pembuatan KTP Baru",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var domainErr *apperrors.DomainError
	if _, _, err := svc.GetForUser(ctx, "someone-else", submission.ID); !errors.As(err, &domainErr) || domainErr.Code != "FORBIDDEN" {
		t.Fatalf("expected FORBIDDEN for foreign submission, got %v", err)
	}
}

func TestInboxDefaultsToActionable(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()
	citizen := testCitizen()

	first, err := svc.Create(ctx, citizen, SubmissionCreateInput{ServiceType: "ktp", Description: "a"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, citizen, SubmissionCreateInput{ServiceType: "kk", Description: "b"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Process(ctx, admin, first.ID); err != nil {
		t.Fatalf("process: %v", err)
	}
	if _, err := svc.Approve(ctx, admin, first.ID, "https://example.com/doc.pdf"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	inbox, err := svc.ListInbox(ctx, nil, 0, 0)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) != 1 || inbox[0].ID != second.ID {
		t.Fatalf("inbox must only hold actionable submissions, got %+v", inbox)
	}
}

func TestStatsCountsByStatus(t *testing.T) {
	svc := newTestSubmissionService(t)
	ctx := context.Background()
	admin := testAdmin()
	citizen := testCitizen()

	first, err := svc.Create(ctx, citizen, SubmissionCreateInput{ServiceType: "ktp", Description: "a"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, citizen, SubmissionCreateInput{ServiceType: "kk", Description: "b"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Process(ctx, admin, first.ID); err != nil {
		t.Fatalf("process: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Pending != 1 || stats.Processing != 1 || stats.Approved != 0 || stats.Rejected != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", stats.Total)
	}
}
