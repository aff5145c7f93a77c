package dto

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// CourseCreateRequest payload for new courses. TeacherID is optional; it
// defaults to the authenticated caller.
type CourseCreateRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	TeacherID   int64   `json:"teacher_id" form:"teacher_id"`
	Price       float64 `json:"price" form:"price"`
}

// CoursePublishRequest toggles the publish flag.
type CoursePublishRequest struct {
	ID      int64 `json:"id" form:"id"`
	Publish bool  `json:"publish" form:"publish"`
}

// ContentCreateRequest attaches a material link to a course.
type ContentCreateRequest struct {
	CourseID int64  `json:"course_id" form:"course_id"`
	Link     string `json:"link" form:"link"`
	URL      string `json:"url" form:"url"`
}

// CourseResponse is the public view of a course.
type CourseResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	TeacherID   int64      `json:"teacher_id"`
	Price       float64    `json:"price"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ContentResponse is the public view of a content link.
type ContentResponse struct {
	ID   int64  `json:"id"`
	Link string `json:"link"`
	URL  string `json:"url"`
}

// NewCourseResponse maps the domain model to its transport shape.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Slug:        course.Slug,
		Description: course.Description,
		TeacherID:   course.TeacherID,
		Price:       course.Price,
		IsPublished: course.IsPublished,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

// NewCourseListResponse maps a slice of courses.
func NewCourseListResponse(courses []domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}

// NewContentListResponse maps a slice of content links.
func NewContentListResponse(items []domain.Content) []ContentResponse {
	out := make([]ContentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ContentResponse{ID: item.ID, Link: item.Link, URL: item.URL})
	}
	return out
}
