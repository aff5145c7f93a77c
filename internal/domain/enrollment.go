package domain

import "time"

// EnrollmentWindow is how long access lasts after purchase.
const EnrollmentWindow = 30 * 24 * time.Hour

// Enrollment links a student to a purchased course. Rows are created on
// purchase and never mutated afterwards.
type Enrollment struct {
	ID         int64
	StudentID  int64
	CourseID   int64
	EnrolledAt time.Time
	ExpiresAt  time.Time
}
