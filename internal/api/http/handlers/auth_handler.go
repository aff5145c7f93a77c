package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/domain"
	"github.com/spec-kit/lms-service/internal/service"
)

// AuthHandler exposes registration, login and the password-reset flow.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email, username and password required")
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.UserRole(req.Role),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Login handles POST /api/v1/auth/login. Accepts the OAuth2 password-grant
// form fields username and password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// RequestPasswordReset handles POST /api/v1/auth/reset-password. The
// response shape is identical whether or not the email is registered.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	resetID, err := h.auth.RequestPasswordReset(c.Context(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(dto.PasswordResetResponse{
		Message: "If the email exists, an OTP code has been sent",
		ResetID: resetID,
	})
}

// VerifyPasswordReset handles POST /api/v1/auth/reset-password/verify.
func (h *AuthHandler) VerifyPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ResetID <= 0 || req.OTPCode == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "reset_id, otp_code and new_password required")
	}

	code, err := strconv.Atoi(req.OTPCode)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid OTP code format")
	}

	if err := h.auth.VerifyPasswordReset(c.Context(), req.ResetID, code, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password has been successfully reset"})
}
