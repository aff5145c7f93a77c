package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lms-service/internal/domain"
)

// EnrollmentRepository records student purchases.
type EnrollmentRepository interface {
	// Purchase verifies the course exists and inserts the enrollment within
	// a single transaction. Returns ErrDuplicate when the student already
	// holds an enrollment for the course.
	Purchase(ctx context.Context, enrollment *domain.Enrollment) error
	ListCoursesForStudent(ctx context.Context, studentID int64) ([]domain.Course, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository instantiates repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

func (r *enrollmentRepository) Purchase(ctx context.Context, enrollment *domain.Enrollment) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var courseID int64
	if err := tx.QueryRow(ctx,
		`SELECT id FROM courses WHERE id=$1`,
		enrollment.CourseID,
	).Scan(&courseID); err != nil {
		return err
	}

	const insert = `
        INSERT INTO enrollments (student_id, course_id, enrolled_at, expires_at)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	if err := tx.QueryRow(ctx, insert,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrolledAt,
		enrollment.ExpiresAt,
	).Scan(&enrollment.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *enrollmentRepository) ListCoursesForStudent(ctx context.Context, studentID int64) ([]domain.Course, error) {
	const query = `
        SELECT c.id, c.title, c.slug, c.description, c.teacher_id, c.price, c.is_published, c.created_at, c.updated_at
        FROM courses c
        JOIN enrollments e ON e.course_id = c.id
        WHERE e.student_id = $1
        ORDER BY e.enrolled_at`
	rows, err := r.pool.Query(ctx, query, studentID)
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
