package service

import (
	"context"
	"testing"

	"github.com/spec-kit/lms-service/internal/domain"
)

func TestUpdateProfile_PartialSemantics(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	svc := NewUserService(users, newFakeEnrollmentRepo(courses))
	ctx := context.Background()

	seed := &domain.User{
		Email:     "ada@example.com",
		Username:  "ada",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      domain.RoleStudent,
		IsActive:  true,
	}
	if err := users.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	newFirst := "Augusta"
	updated, err := svc.UpdateProfile(ctx, seed.ID, ProfileUpdate{FirstName: &newFirst})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Fatalf("first name not updated: %q", updated.FirstName)
	}
	if updated.LastName != "Lovelace" {
		t.Fatalf("unsupplied field must not change: %q", updated.LastName)
	}
	if !updated.IsActive {
		t.Fatal("unsupplied active flag must not change")
	}
}

func TestUpdateProfile_MissingUserNotFound(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	svc := NewUserService(users, newFakeEnrollmentRepo(courses))

	name := "x"
	_, err := svc.UpdateProfile(context.Background(), 99, ProfileUpdate{FirstName: &name})
	if err == nil {
		t.Fatal("expected not found")
	}
	if domainCode(t, err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", domainCode(t, err))
	}
}

func TestEnrolledCourses_JoinsCatalog(t *testing.T) {
	users := newFakeUserRepo()
	courses := newFakeCourseRepo()
	enrollments := newFakeEnrollmentRepo(courses)
	userSvc := NewUserService(users, enrollments)
	courseSvc := NewCourseService(courses, newFakeContentRepo(), enrollments, nil)
	ctx := context.Background()

	course, err := courseSvc.Create(ctx, CourseCreateInput{Title: "Go", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := courseSvc.Purchase(ctx, 42, course.ID); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	mine, err := userSvc.EnrolledCourses(ctx, 42)
	if err != nil {
		t.Fatalf("enrolled: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != course.ID {
		t.Fatalf("unexpected enrollment listing: %+v", mine)
	}

	other, err := userSvc.EnrolledCourses(ctx, 7)
	if err != nil {
		t.Fatalf("enrolled: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("student 7 has no purchases, got %+v", other)
	}
}
