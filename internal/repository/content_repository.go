package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// ContentRepository manages supplementary course material links.
type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	ListByCourse(ctx context.Context, courseID int64) ([]domain.Content, error)
}

type contentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository constructs repository.
func NewContentRepository(pool *pgxpool.Pool) ContentRepository {
	return &contentRepository{pool: pool}
}

func (r *contentRepository) Create(ctx context.Context, content *domain.Content) error {
	const query = `
        INSERT INTO contents (course_id, link, url)
        VALUES ($1,$2,$3)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		content.CourseID,
		content.Link,
		content.URL,
	).Scan(&content.ID)
}

func (r *contentRepository) ListByCourse(ctx context.Context, courseID int64) ([]domain.Content, error) {
	const query = `
        SELECT id, course_id, link, url
        FROM contents WHERE course_id=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Content, 0)
	for rows.Next() {
		var content domain.Content
		if err := rows.Scan(&content.ID, &content.CourseID, &content.Link, &content.URL); err != nil {
			return nil, err
		}
		items = append(items, content)
	}
	return items, rows.Err()
}
