package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/domain"
	"github.com/revaissue/webclient/internal/session"
)

// ProjectsHandler serves the project screens.
type ProjectsHandler struct {
	oracle   *session.Oracle
	projects *backend.ProjectClient
	users    *backend.UserClient
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(oracle *session.Oracle, projects *backend.ProjectClient, users *backend.UserClient) *ProjectsHandler {
	return &ProjectsHandler{oracle: oracle, projects: projects, users: users}
}

// List handles GET /projects.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.UserContext())
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"projects": projects}})
}

// Mine handles GET /projects/mine.
func (h *ProjectsHandler) Mine(c *fiber.Ctx) error {
	ctx := c.UserContext()
	principal, ok := h.oracle.CurrentPrincipal(ctx)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	projects, err := h.projects.ListByUser(ctx, principal.ID)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"projects": projects}})
}

// Detail handles GET /projects/:id, combining the project with its
// member list.
func (h *ProjectsHandler) Detail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	project, err := h.projects.Get(ctx, id)
	if err != nil {
		return mapBackendError(err)
	}
	members, err := h.users.ListByProject(ctx, id)
	if err != nil {
		return mapBackendError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"project": project,
			"members": userViews(members),
		},
	})
}

type projectForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	var req projectForm
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	project, err := h.projects.Create(c.UserContext(), &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ProjectStatusActive,
	})
	if err != nil {
		return mapBackendError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"project": project}})
}

// Update handles PUT /projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	var req domain.Project
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"project": project}})
}

// Assign handles POST /projects/:id/assign/:userId.
func (h *ProjectsHandler) Assign(c *fiber.Ctx) error {
	if err := h.projects.AssignUser(c.UserContext(), c.Params("id"), c.Params("userId")); err != nil {
		return mapBackendError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
