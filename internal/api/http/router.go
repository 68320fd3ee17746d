package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KoshiiX/Layanan-1/internal/api/http/handlers"
	"github.com/KoshiiX/Layanan-1/internal/auth"
	"github.com/KoshiiX/Layanan-1/internal/domain"
)

// Handlers groups the handler set registered on the router.
type Handlers struct {
	Health           *handlers.HealthHandler
	Auth             *handlers.AuthHandler
	Submissions      *handlers.SubmissionsHandler
	AdminSubmissions *handlers.AdminSubmissionsHandler
	News             *handlers.NewsHandler
	Users            *handlers.UsersHandler
	Metrics          *handlers.MetricsHandler
}

// RegisterRoutes wires all portal endpoints onto the app.
func RegisterRoutes(app *fiber.App, h Handlers, authMW *auth.Middleware) {
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	session := authGroup.Group("", authMW.Handle)
	session.Post("/logout", h.Auth.Logout)
	session.Get("/profile", h.Auth.Profile)
	session.Patch("/profile", h.Auth.UpdateProfile)
	session.Post("/password/change", h.Auth.ChangePassword)

	api.Get("/services", h.Submissions.Catalog)

	// Citizens file and track their own requests.
	submissions := api.Group("/submissions", authMW.Handle, auth.RequireRole(domain.RoleUser))
	submissions.Post("/", h.Submissions.Create)
	submissions.Get("/", h.Submissions.List)
	submissions.Get("/:id", h.Submissions.Get)

	// Announcements are public reads.
	news := api.Group("/news")
	news.Get("/", h.News.List)
	news.Get("/:id", h.News.Get)

	// Office staff endpoints.
	admin := api.Group("/admin", authMW.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", h.AdminSubmissions.Dashboard)
	admin.Get("/metrics", h.Metrics.Show)
	admin.Get("/users", h.Users.List)
	admin.Get("/inbox", h.AdminSubmissions.Inbox)
	admin.Get("/submissions", h.AdminSubmissions.List)
	admin.Get("/submissions/:id", h.AdminSubmissions.Get)
	admin.Post("/submissions/:id/process", h.AdminSubmissions.Process)
	admin.Post("/submissions/:id/approve", h.AdminSubmissions.Approve)
	admin.Post("/submissions/:id/reject", h.AdminSubmissions.Reject)
	admin.Post("/news", h.News.Create)
	admin.Put("/news/:id", h.News.Update)
	admin.Delete("/news/:id", h.News.Delete)
}
