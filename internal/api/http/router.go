package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/lms-service/internal/api/http/handlers"
	"github.com/spec-kit/lms-service/internal/auth"
	"github.com/spec-kit/lms-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Courses        *handlers.CourseHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/reset-password", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/reset-password/verify", cfg.Auth.VerifyPasswordReset)

	usersGroup := api.Group("/users")
	usersGroup.Get("/get_content", cfg.Users.GetContent)
	usersProtected := usersGroup.Group("", cfg.AuthMiddleware.Handle)
	usersProtected.Get("/me", auth.RequireActive(), cfg.Users.Me)
	usersProtected.Put("/me", auth.RequireActive(), cfg.Users.UpdateMe)
	usersProtected.Get("/my_courses", cfg.Users.MyCourses)
	usersProtected.Post("/add_content", auth.RequireRole(domain.RoleAdmin), cfg.Users.AddContent)

	courseGroup := api.Group("/course")
	courseGroup.Get("/courses", cfg.Courses.ListPublished)
	courseGroup.Get("/course/:id", cfg.Courses.GetByID)
	courseProtected := courseGroup.Group("", cfg.AuthMiddleware.Handle)
	courseProtected.Get("/courses_for_superuser", auth.RequireRole(domain.RoleAdmin), cfg.Courses.ListForSuperuser)
	courseProtected.Post("/creating_courses", auth.RequireRole(domain.RoleTeacher, domain.RoleAdmin), cfg.Courses.Create)
	courseProtected.Post("/publish_course", auth.RequireRole(domain.RoleAdmin), cfg.Courses.Publish)
	courseProtected.Post("/purchase_course/:course_id", cfg.Courses.Purchase)
}
