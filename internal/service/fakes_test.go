package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/repository"
)

// In-memory repository implementations backing the service tests.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	for _, user := range r.users {
		if user.Email == email {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeResetRepo struct {
	nextID int64
	resets map[int64]*repository.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{nextID: 1, resets: make(map[int64]*repository.PasswordReset)}
}

func (r *fakeResetRepo) Create(_ context.Context, reset *repository.PasswordReset) error {
	for id, existing := range r.resets {
		if existing.Email == reset.Email {
			delete(r.resets, id)
		}
	}
	reset.ID = r.nextID
	r.nextID++
	clone := *reset
	r.resets[reset.ID] = &clone
	return nil
}

func (r *fakeResetRepo) GetByIDAndCode(_ context.Context, id int64, code int) (*repository.PasswordReset, error) {
	reset, ok := r.resets[id]
	if !ok || reset.Code != code {
		return nil, pgx.ErrNoRows
	}
	clone := *reset
	return &clone, nil
}

func (r *fakeResetRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.resets, id)
	return nil
}

func (r *fakeResetRepo) DeleteByIDAndEmail(_ context.Context, id int64, email string) error {
	if reset, ok := r.resets[id]; ok && reset.Email == email {
		delete(r.resets, id)
	}
	return nil
}

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]*domain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1, courses: make(map[int64]*domain.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = r.nextID
	r.nextID++
	course.IsPublished = false
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) SetPublished(_ context.Context, id int64, published bool) error {
	course, ok := r.courses[id]
	if !ok {
		return pgx.ErrNoRows
	}
	course.IsPublished = published
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *course
	return &clone, nil
}

func (r *fakeCourseRepo) ListPublished(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, 0)
	for id := int64(1); id < r.nextID; id++ {
		if course, ok := r.courses[id]; ok && course.IsPublished {
			out = append(out, *course)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) ListAll(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, 0)
	for id := int64(1); id < r.nextID; id++ {
		if course, ok := r.courses[id]; ok {
			out = append(out, *course)
		}
	}
	return out, nil
}

type fakeContentRepo struct {
	nextID int64
	items  []domain.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{nextID: 1}
}

func (r *fakeContentRepo) Create(_ context.Context, content *domain.Content) error {
	content.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *content)
	return nil
}

func (r *fakeContentRepo) ListByCourse(_ context.Context, courseID int64) ([]domain.Content, error) {
	out := make([]domain.Content, 0)
	for _, item := range r.items {
		if item.CourseID == courseID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	courses     *fakeCourseRepo
	nextID      int64
	enrollments []domain.Enrollment
}

func newFakeEnrollmentRepo(courses *fakeCourseRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{courses: courses, nextID: 1}
}

func (r *fakeEnrollmentRepo) Purchase(_ context.Context, enrollment *domain.Enrollment) error {
	if _, ok := r.courses.courses[enrollment.CourseID]; !ok {
		return pgx.ErrNoRows
	}
	for _, existing := range r.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return repository.ErrDuplicate
		}
	}
	enrollment.ID = r.nextID
	r.nextID++
	r.enrollments = append(r.enrollments, *enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) ListCoursesForStudent(_ context.Context, studentID int64) ([]domain.Course, error) {
	out := make([]domain.Course, 0)
	for _, enrollment := range r.enrollments {
		if enrollment.StudentID == studentID {
			if course, ok := r.courses.courses[enrollment.CourseID]; ok {
				out = append(out, *course)
			}
		}
	}
	return out, nil
}
