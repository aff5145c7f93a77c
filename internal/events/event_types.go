package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventCoursePublished        EventType = "course_published"
	EventCoursePurchased        EventType = "course_purchased"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// PasswordResetRequestedPayload payload. The code travels only to the mail
// worker and is never serialized into logs.
type PasswordResetRequestedPayload struct {
	Email   string `json:"email"`
	ResetID int64  `json:"reset_id"`
	Code    int    `json:"-"`
}

// CoursePublishedPayload payload.
type CoursePublishedPayload struct {
	CourseID  int64 `json:"course_id"`
	Published bool  `json:"published"`
}

// CoursePurchasedPayload payload.
type CoursePurchasedPayload struct {
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}
