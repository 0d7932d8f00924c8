package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/events"
	"github.com/revaissue/webclient/internal/guard"
	"github.com/revaissue/webclient/internal/session"
	"github.com/revaissue/webclient/internal/web/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Dashboard  *handlers.DashboardHandler
	Issues     *handlers.IssuesHandler
	Projects   *handlers.ProjectsHandler
	Users      *handlers.UsersHandler
	Audit      *handlers.AuditHandler
	Oracle     *session.Oracle
	Authorizer *guard.Authorizer
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// RegisterRoutes wires HTTP routes. Everything past the login and
// account-creation screens sits behind the route authorizer.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Post("/create-account", cfg.Auth.CreateAccount)

	protected := app.Group("", RequireAuthorized(cfg.Authorizer, cfg.Oracle, cfg.Dispatcher, cfg.Logger))

	protected.Get("/dashboard", cfg.Dashboard.Show)

	protected.Get("/issues", cfg.Issues.List)
	protected.Get("/issues/mine", cfg.Issues.Mine)
	protected.Get("/issues/assigned", cfg.Issues.Assigned)
	protected.Get("/issues/:id/comments", cfg.Issues.Comments)
	protected.Post("/issues/:id/comments", cfg.Issues.AddComment)
	protected.Put("/issues/:id/comments/:commentId", cfg.Issues.UpdateComment)
	protected.Delete("/issues/:id/comments/:commentId", cfg.Issues.DeleteComment)

	protected.Get("/projects", cfg.Projects.List)
	protected.Get("/projects/mine", cfg.Projects.Mine)
	protected.Get("/projects/:id", cfg.Projects.Detail)

	adminOnly := protected.Group("", RequireRole(cfg.Oracle, auth.RoleAdmin))
	adminOnly.Post("/projects", cfg.Projects.Create)
	adminOnly.Put("/projects/:id", cfg.Projects.Update)
	adminOnly.Post("/projects/:id/assign/:userId", cfg.Projects.Assign)

	protected.Get("/users", cfg.Users.List)

	adminOnly.Get("/audit", cfg.Audit.List)
	adminOnly.Get("/audit/session-trail", cfg.Audit.SessionTrail)
	adminOnly.Get("/audit/entity/:entityType", cfg.Audit.ByEntityType)
	adminOnly.Get("/audit/actor/:actorId", cfg.Audit.ByActor)
}
