package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/service"
)

// UsersHandler exposes profile and enrollment endpoints.
type UsersHandler struct {
	users   *service.UserService
	courses *service.CourseService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, courseService *service.CourseService) *UsersHandler {
	return &UsersHandler{users: userService, courses: courseService}
}

// Me handles GET /api/v1/users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(dto.NewUserResponse(principal.User))
}

// UpdateMe handles PUT /api/v1/users/me with partial update semantics.
func (h *UsersHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateProfile(c.Context(), principal.User.ID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// MyCourses handles GET /api/v1/users/my_courses.
func (h *UsersHandler) MyCourses(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	courses, err := h.users.EnrolledCourses(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"courses": dto.NewCourseListResponse(courses)})
}

// GetContent handles GET /api/v1/users/get_content?course_id=N (public).
func (h *UsersHandler) GetContent(c *fiber.Ctx) error {
	courseID, err := strconv.ParseInt(c.Query("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "course_id required")
	}

	items, err := h.courses.GetContent(c.Context(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"contents": dto.NewContentListResponse(items)})
}

// AddContent handles POST /api/v1/users/add_content (admin only).
func (h *UsersHandler) AddContent(c *fiber.Ctx) error {
	var req dto.ContentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CourseID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "course_id required")
	}

	if _, err := h.courses.AddContent(c.Context(), req.CourseID, req.Link, req.URL); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "created"})
}
