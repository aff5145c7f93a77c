package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// CourseCreateInput carries new-course fields. Courses always start
// unpublished.
type CourseCreateInput struct {
	Title       string
	Description string
	TeacherID   int64
	Price       float64
}

// CourseService covers the catalog, content links and the enrollment ledger.
type CourseService struct {
	courses     repository.CourseRepository
	contents    repository.ContentRepository
	enrollments repository.EnrollmentRepository
	dispatcher  events.Dispatcher
	now         func() time.Time
}

// NewCourseService builds the service.
func NewCourseService(courses repository.CourseRepository, contents repository.ContentRepository, enrollments repository.EnrollmentRepository, dispatcher events.Dispatcher) *CourseService {
	return &CourseService{
		courses:     courses,
		contents:    contents,
		enrollments: enrollments,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

// ListPublished returns courses visible to everyone. An empty catalog is an
// empty slice, not an error.
func (s *CourseService) ListPublished(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.ListPublished(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return courses, nil
}

// ListAll returns every course regardless of publish state.
func (s *CourseService) ListAll(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return courses, nil
}

// GetByID fetches a single course by id.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return course, nil
}

// Create stores a new unpublished course with a slug derived from its title.
func (s *CourseService) Create(ctx context.Context, in CourseCreateInput) (*domain.Course, error) {
	if in.Title == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}

	course := &domain.Course{
		Title:       in.Title,
		Slug:        slug.Make(in.Title),
		Description: in.Description,
		TeacherID:   in.TeacherID,
		Price:       in.Price,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, apperrors.MapError(err)
	}
	return course, nil
}

// SetPublished idempotently sets the publish flag.
func (s *CourseService) SetPublished(ctx context.Context, id int64, published bool) error {
	if err := s.courses.SetPublished(ctx, id, published); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("course", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventCoursePublished, events.CoursePublishedPayload{
		CourseID:  id,
		Published: published,
	})
	return nil
}

// AddContent attaches a material link to an existing course.
func (s *CourseService) AddContent(ctx context.Context, courseID int64, link, url string) (*domain.Content, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": courseID})
		}
		return nil, apperrors.MapError(err)
	}

	content := &domain.Content{CourseID: courseID, Link: link, URL: url}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, apperrors.MapError(err)
	}
	return content, nil
}

// GetContent returns every material link for a course, in insertion order.
func (s *CourseService) GetContent(ctx context.Context, courseID int64) ([]domain.Content, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": courseID})
		}
		return nil, apperrors.MapError(err)
	}

	items, err := s.contents.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return items, nil
}

// Purchase records the enrollment with a 30-day access window. Buying the
// same course twice is rejected as a conflict.
func (s *CourseService) Purchase(ctx context.Context, studentID, courseID int64) (*domain.Enrollment, error) {
	now := s.now()
	enrollment := &domain.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: now,
		ExpiresAt:  now.Add(domain.EnrollmentWindow),
	}
	if err := s.enrollments.Purchase(ctx, enrollment); err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, apperrors.NewNotFound("course", map[string]any{"id": courseID})
		case repository.ErrDuplicate:
			return nil, apperrors.NewConflict("course already purchased", map[string]any{"course_id": courseID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventCoursePurchased, events.CoursePurchasedPayload{
		StudentID: studentID,
		CourseID:  courseID,
	})
	return enrollment, nil
}

func (s *CourseService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
