package dto

import (
	"time"

	"github.com/spec-kit/lms-service/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email     string `json:"email" form:"email"`
	Username  string `json:"username" form:"username"`
	Password  string `json:"password" form:"password"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Role      string `json:"role" form:"role"`
}

// LoginRequest is the OAuth2-style password grant form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordResetRequest starts the OTP flow.
type PasswordResetRequest struct {
	Email string `json:"email" form:"email"`
}

// PasswordResetResponse always carries the same message shape; reset_id is 0
// for unknown emails.
type PasswordResetResponse struct {
	Message string `json:"message"`
	ResetID int64  `json:"reset_id"`
}

// PasswordResetVerifyRequest completes the OTP flow.
type PasswordResetVerifyRequest struct {
	ResetID     int64  `json:"reset_id" form:"reset_id"`
	OTPCode     string `json:"otp_code" form:"otp_code"`
	NewPassword string `json:"new_password" form:"new_password"`
}

// UpdateProfileRequest applies a partial profile update.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsActive  *bool   `json:"is_active"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// NewUserResponse maps the domain model to its transport shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       string(user.Role),
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
