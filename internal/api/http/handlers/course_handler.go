package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/dto"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/service"
)

// CourseHandler exposes catalog and purchase endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs handler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courseService}
}

// ListPublished handles GET /api/v1/course/courses (public).
func (h *CourseHandler) ListPublished(c *fiber.Ctx) error {
	courses, err := h.courses.ListPublished(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"courses": dto.NewCourseListResponse(courses)})
}

// ListForSuperuser handles GET /api/v1/course/courses_for_superuser.
func (h *CourseHandler) ListForSuperuser(c *fiber.Ctx) error {
	courses, err := h.courses.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"courses": dto.NewCourseListResponse(courses)})
}

// GetByID handles GET /api/v1/course/course/:id.
func (h *CourseHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid course id")
	}

	course, err := h.courses.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCourseResponse(course))
}

// Create handles POST /api/v1/course/creating_courses (teacher or admin).
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	teacherID := req.TeacherID
	if teacherID <= 0 {
		teacherID = principal.User.ID
	}

	course, err := h.courses.Create(c.Context(), service.CourseCreateInput{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacherID,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCourseResponse(course))
}

// Publish handles POST /api/v1/course/publish_course (admin only).
func (h *CourseHandler) Publish(c *fiber.Ctx) error {
	var req dto.CoursePublishRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "course id required")
	}

	if err := h.courses.SetPublished(c.Context(), req.ID, req.Publish); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Course is published"})
}

// Purchase handles POST /api/v1/course/purchase_course/:course_id.
func (h *CourseHandler) Purchase(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	courseID, err := strconv.ParseInt(c.Params("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid course id")
	}

	if _, err := h.courses.Purchase(c.Context(), principal.User.ID, courseID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Course was purchased"})
}
