package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/session"
)

// DashboardHandler assembles the landing view model.
type DashboardHandler struct {
	oracle   *session.Oracle
	issues   *backend.IssueClient
	projects *backend.ProjectClient
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(oracle *session.Oracle, issues *backend.IssueClient, projects *backend.ProjectClient) *DashboardHandler {
	return &DashboardHandler{oracle: oracle, issues: issues, projects: projects}
}

// Show handles GET /dashboard.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	ctx := c.UserContext()
	res := h.oracle.Resolve(ctx)
	if !res.Identified {
		return c.Redirect("/login", fiber.StatusFound)
	}

	myIssues, err := h.issues.ListByUser(ctx, res.Principal.ID)
	if err != nil {
		return mapBackendError(err)
	}
	projects, err := h.projects.ListByUser(ctx, res.Principal.ID)
	if err != nil {
		return mapBackendError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"principal":        res.Principal,
			"isAdmin":          res.Principal.Role == auth.RoleAdmin,
			"myIssueCount":     len(myIssues),
			"myIssues":         myIssues,
			"assignedProjects": projects,
		},
	})
}
