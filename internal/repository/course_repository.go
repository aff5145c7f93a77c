package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// CourseRepository encapsulates course persistence.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	SetPublished(ctx context.Context, id int64, published bool) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	ListPublished(ctx context.Context) ([]domain.Course, error)
	ListAll(ctx context.Context) ([]domain.Course, error)
}

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository instantiates repository.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

const courseColumns = `id, title, slug, description, teacher_id, price, is_published, created_at, updated_at`

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (title, slug, description, teacher_id, price, is_published)
        VALUES ($1,$2,$3,$4,$5,FALSE)
        RETURNING id, is_published, created_at`
	return r.pool.QueryRow(ctx, query,
		course.Title,
		course.Slug,
		course.Description,
		course.TeacherID,
		course.Price,
	).Scan(&course.ID, &course.IsPublished, &course.CreatedAt)
}

func (r *courseRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	const query = `
        UPDATE courses SET is_published=$1, updated_at=NOW()
        WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, published, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses WHERE id=$1`
	var course domain.Course
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.TeacherID,
		&course.Price,
		&course.IsPublished,
		&course.CreatedAt,
		&course.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) ListPublished(ctx context.Context) ([]domain.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses WHERE is_published=TRUE ORDER BY id`
	return r.list(ctx, query)
}

func (r *courseRepository) ListAll(ctx context.Context) ([]domain.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses ORDER BY id`
	return r.list(ctx, query)
}

func (r *courseRepository) list(ctx context.Context, query string, args ...any) ([]domain.Course, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Slug,
			&course.Description,
			&course.TeacherID,
			&course.Price,
			&course.IsPublished,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
