package service

import (
	"context"
	"testing"

	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/events"
)

type courseFixture struct {
	svc         *CourseService
	courses     *fakeCourseRepo
	contents    *fakeContentRepo
	enrollments *fakeEnrollmentRepo
}

func newCourseFixture(t *testing.T) *courseFixture {
	t.Helper()

	courses := newFakeCourseRepo()
	contents := newFakeContentRepo()
	enrollments := newFakeEnrollmentRepo(courses)
	svc := NewCourseService(courses, contents, enrollments, events.NewInMemoryDispatcher())
	return &courseFixture{svc: svc, courses: courses, contents: contents, enrollments: enrollments}
}

func TestCreateCourse_StartsUnpublishedWithSlug(t *testing.T) {
	f := newCourseFixture(t)

	course, err := f.svc.Create(context.Background(), CourseCreateInput{
		Title:     "Intro to Go Programming",
		TeacherID: 7,
		Price:     49.99,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.IsPublished {
		t.Fatal("new courses must start unpublished")
	}
	if course.Slug != "intro-to-go-programming" {
		t.Fatalf("unexpected slug %q", course.Slug)
	}
}

func TestCreateCourse_TitleRequired(t *testing.T) {
	f := newCourseFixture(t)

	if _, err := f.svc.Create(context.Background(), CourseCreateInput{TeacherID: 7}); err == nil {
		t.Fatal("expected missing title to fail")
	}
}

func TestPublishFlow_GatesPublicListing(t *testing.T) {
	f := newCourseFixture(t)
	ctx := context.Background()

	course, err := f.svc.Create(ctx, CourseCreateInput{Title: "Databases", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := f.svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("unpublished course must not be listed, got %d", len(listed))
	}

	if err := f.svc.SetPublished(ctx, course.ID, true); err != nil {
		t.Fatalf("publish: %v", err)
	}
	listed, err = f.svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != course.ID {
		t.Fatalf("published course missing from listing: %+v", listed)
	}

	// publish is idempotent on the requested value
	if err := f.svc.SetPublished(ctx, course.ID, true); err != nil {
		t.Fatalf("re-publish: %v", err)
	}
}

func TestPublish_MissingCourseNotFound(t *testing.T) {
	f := newCourseFixture(t)

	err := f.svc.SetPublished(context.Background(), 99, true)
	if err == nil {
		t.Fatal("expected not found")
	}
	if domainCode(t, err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", domainCode(t, err))
	}
}

func TestGetByID_FiltersById(t *testing.T) {
	f := newCourseFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, CourseCreateInput{Title: "First", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := f.svc.Create(ctx, CourseCreateInput{Title: "Second", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.svc.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != second.ID || got.ID == first.ID {
		t.Fatalf("fetched wrong course: %+v", got)
	}

	if _, err := f.svc.GetByID(ctx, 1000); err == nil {
		t.Fatal("expected not found for unknown id")
	}
}

func TestPurchase_DuplicateRejected(t *testing.T) {
	f := newCourseFixture(t)
	ctx := context.Background()

	course, err := f.svc.Create(ctx, CourseCreateInput{Title: "Go", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	enrollment, err := f.svc.Purchase(ctx, 42, course.ID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if want := enrollment.EnrolledAt.Add(domain.EnrollmentWindow); !enrollment.ExpiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want enrolled_at + 30 days", enrollment.ExpiresAt)
	}

	_, err = f.svc.Purchase(ctx, 42, course.ID)
	if err == nil {
		t.Fatal("second purchase must be rejected")
	}
	if domainCode(t, err) != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %s", domainCode(t, err))
	}
}

func TestPurchase_MissingCourseNotFound(t *testing.T) {
	f := newCourseFixture(t)

	_, err := f.svc.Purchase(context.Background(), 42, 99)
	if err == nil {
		t.Fatal("expected not found")
	}
	if domainCode(t, err) != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", domainCode(t, err))
	}
}

func TestContent_RoundTripOrdered(t *testing.T) {
	f := newCourseFixture(t)
	ctx := context.Background()

	course, err := f.svc.Create(ctx, CourseCreateInput{Title: "Go", TeacherID: 7})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.svc.AddContent(ctx, course.ID, "slides", "https://example.com/slides"); err != nil {
		t.Fatalf("add content: %v", err)
	}
	if _, err := f.svc.AddContent(ctx, course.ID, "video", "https://example.com/video"); err != nil {
		t.Fatalf("add content: %v", err)
	}

	items, err := f.svc.GetContent(ctx, course.ID)
	if err != nil {
		t.Fatalf("get content: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both content rows, got %d", len(items))
	}
	if items[0].Link != "slides" || items[1].Link != "video" {
		t.Fatalf("content out of insertion order: %+v", items)
	}

	if _, err := f.svc.AddContent(ctx, 99, "x", "y"); err == nil {
		t.Fatal("content for missing course must fail")
	}
	if _, err := f.svc.GetContent(ctx, 99); err == nil {
		t.Fatal("content fetch for missing course must fail")
	}
}
