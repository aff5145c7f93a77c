package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
	apperrors "github.com/spec-kit/lms-service/pkg/util"
)

// ProfileUpdate carries optional profile fields; only non-nil fields change.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	IsActive  *bool
}

// UserService handles profile reads and updates plus enrollment listings.
type UserService struct {
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, enrollments repository.EnrollmentRepository) *UserService {
	return &UserService{users: users, enrollments: enrollments}
}

// GetByID fetches a user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the user's profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// EnrolledCourses lists the courses a student has purchased.
func (s *UserService) EnrolledCourses(ctx context.Context, studentID int64) ([]domain.Course, error) {
	courses, err := s.enrollments.ListCoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return courses, nil
}
