package domain

import "time"

// UserRole distinguishes what a caller may do.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User is the domain model for any account: students, teachers and admins
// share one table with a role column.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
