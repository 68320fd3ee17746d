// Package seed holds the built-in mock data used to initialize the
// snapshot store on first run, mirroring the demo roster and content
// the portal ships with.
package seed

import (
	"time"

	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/domain"
)

// Users returns the demo roster: one office admin and one citizen.
// Demo passwords are hashed at seed time so the roster never stores
// plaintext secrets.
func Users(bcryptCost int) ([]domain.User, error) {
	now := time.Now()

	adminHash, err := auth.HashPassword("admin123", bcryptCost)
	if err != nil {
		return nil, err
	}
	userHash, err := auth.HashPassword("user123", bcryptCost)
	if err != nil {
		return nil, err
	}

	return []domain.User{
		{
			ID:           "1",
			Name:         "Admin Kelurahan",
			NIK:          "3171000000000001",
			Email:        "admin@kelurahan.id",
			PasswordHash: adminHash,
			Phone:        "081234567890",
			Address:      "Kantor Kelurahan",
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Name:         "John Doe",
			NIK:          "3171000000000002",
			Email:        "john@example.com",
			PasswordHash: userHash,
			Phone:        "081234567891",
			Address:      "Jl. Contoh No. 123",
			Role:         domain.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}, nil
}

// News returns the demo announcements, newest first.
func News() []domain.NewsItem {
	now := time.Now()
	return []domain.NewsItem{
		{
			ID:          "1",
			Title:       "Pelayanan Administrasi Kini Lebih Cepat",
			Image:       "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
			Date:        "2026-01-03",
			Description: "Proses administrasi kini dipercepat dengan sistem digital",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Pendaftaran Online Sudah Dibuka",
			Image:       "https://images.unsplash.com/photo-1551434678-e076c223a692?w=800",
			Date:        "2026-01-02",
			Description: "Masyarakat dapat mengajukan permohonan secara online",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Jam Operasional Baru Kelurahan",
			Image:       "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800",
			Date:        "2026-01-01",
			Description: "Kelurahan kini buka Senin-Jumat 08:00-16:00",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// Submissions returns one completed demo request.
func Submissions() []domain.Submission {
	now := time.Now()
	completed := "2025-12-25"
	docURL := "https://example.com/ktp-1.pdf"
	return []domain.Submission{
		{
			ID:            "1",
			UserID:        "2",
			UserName:      "John Doe",
			ServiceType:   "KTP",
			Description:   "Pembuatan KTP Baru",
			Status:        domain.SubmissionStatusApproved,
			SubmittedDate: "2025-12-20",
			CompletedDate: &completed,
			DocumentURL:   &docURL,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
