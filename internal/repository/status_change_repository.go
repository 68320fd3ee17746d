package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KoshiiX/Layanan-1/internal/domain"
)

type statusChangeRepository struct {
	pool *pgxpool.Pool
}

// NewStatusChangeRepository returns a Postgres-backed implementation.
func NewStatusChangeRepository(pool *pgxpool.Pool) StatusChangeRepository {
	return &statusChangeRepository{pool: pool}
}

func (r *statusChangeRepository) Create(ctx context.Context, change *domain.StatusChange) error {
	const query = `
        INSERT INTO submission_status_changes (submission_id, actor_id, old_status, new_status, note)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		change.SubmissionID,
		change.ActorID,
		change.OldStatus,
		change.NewStatus,
		change.Note,
	).Scan(&change.ID, &change.CreatedAt)
}

func (r *statusChangeRepository) ListBySubmission(ctx context.Context, submissionID string) ([]domain.StatusChange, error) {
	const query = `
        SELECT id, submission_id, actor_id, old_status, new_status, note, created_at
        FROM submission_status_changes WHERE submission_id=$1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StatusChange
	for rows.Next() {
		var change domain.StatusChange
		if err := rows.Scan(
			&change.ID,
			&change.SubmissionID,
			&change.ActorID,
			&change.OldStatus,
			&change.NewStatus,
			&change.Note,
			&change.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, change)
	}
	return result, rows.Err()
}
