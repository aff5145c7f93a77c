package domain

import "time"

// Course is a sellable unit of teaching material. Courses start unpublished
// and only appear in the public listing once the publish flag is set.
type Course struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	TeacherID   int64
	Price       float64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Content is a supplementary material link attached to a course.
type Content struct {
	ID       int64
	CourseID int64
	Link     string
	URL      string
}

// Lesson exists in the schema but has no write path in the request layer yet.
type Lesson struct {
	ID              int64
	Title           string
	Content         string
	CourseID        int64
	OrderIndex      int
	DurationMinutes int
	CreatedAt       time.Time
}

// Progress tracks per-student lesson completion. Inert, same as Lesson.
type Progress struct {
	ID                   int64
	StudentID            int64
	LessonID             int64
	Completed            bool
	CompletionPercentage int
	TimeSpentMinutes     int
	CompletedAt          *time.Time
}
