package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KoshiiX/Layanan-1/internal/domain"
)

type newsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository returns a Postgres-backed implementation.
func NewNewsRepository(pool *pgxpool.Pool) NewsRepository {
	return &newsRepository{pool: pool}
}

const newsColumns = `id, title, image, date, description, created_at, updated_at`

func (r *newsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	const query = `
        INSERT INTO news (title, image, date, description)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.Title,
		item.Image,
		item.Date,
		item.Description,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *newsRepository) Update(ctx context.Context, item *domain.NewsItem) error {
	const query = `
        UPDATE news SET title=$1, image=$2, date=$3, description=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		item.Title,
		item.Image,
		item.Date,
		item.Description,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*domain.NewsItem, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id=$1`
	var item domain.NewsItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Image,
		&item.Date,
		&item.Description,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List returns announcements newest-first, matching the portal feed.
func (r *newsRepository) List(ctx context.Context) ([]domain.NewsItem, error) {
	query := `SELECT ` + newsColumns + ` FROM news ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.NewsItem
	for rows.Next() {
		var item domain.NewsItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Image,
			&item.Date,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
