package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/domain"
	"github.com/revaissue/webclient/internal/session"
)

// IssuesHandler serves the issue screens and their nested comments.
type IssuesHandler struct {
	oracle   *session.Oracle
	issues   *backend.IssueClient
	comments *backend.CommentClient
}

// NewIssuesHandler constructs handler.
func NewIssuesHandler(oracle *session.Oracle, issues *backend.IssueClient, comments *backend.CommentClient) *IssuesHandler {
	return &IssuesHandler{oracle: oracle, issues: issues, comments: comments}
}

// List handles GET /issues.
func (h *IssuesHandler) List(c *fiber.Ctx) error {
	issues, err := h.issues.List(c.UserContext())
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"issues": issues}})
}

// Mine handles GET /issues/mine.
func (h *IssuesHandler) Mine(c *fiber.Ctx) error {
	ctx := c.UserContext()
	principal, ok := h.oracle.CurrentPrincipal(ctx)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	issues, err := h.issues.ListByUser(ctx, principal.ID)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"issues": issues}})
}

// Assigned handles GET /issues/assigned: all issues currently assigned
// to the signed-in user.
func (h *IssuesHandler) Assigned(c *fiber.Ctx) error {
	ctx := c.UserContext()
	principal, ok := h.oracle.CurrentPrincipal(ctx)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	all, err := h.issues.List(ctx)
	if err != nil {
		return mapBackendError(err)
	}

	assigned := make([]domain.Issue, 0)
	for _, issue := range all {
		if issue.AssignedTo != nil && issue.AssignedTo.ID == principal.ID {
			assigned = append(assigned, issue)
		}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"issues": assigned}})
}

// Comments handles GET /issues/:id/comments.
func (h *IssuesHandler) Comments(c *fiber.Ctx) error {
	comments, err := h.comments.ListByIssue(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"comments": comments}})
}

type commentForm struct {
	Content string `json:"content"`
}

// AddComment handles POST /issues/:id/comments.
func (h *IssuesHandler) AddComment(c *fiber.Ctx) error {
	var req commentForm
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Content == "" {
		return fiber.NewError(http.StatusBadRequest, "content required")
	}

	comment, err := h.comments.Create(c.UserContext(), c.Params("id"), req.Content)
	if err != nil {
		return mapBackendError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"comment": comment}})
}

// UpdateComment handles PUT /issues/:id/comments/:commentId.
func (h *IssuesHandler) UpdateComment(c *fiber.Ctx) error {
	var req commentForm
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Content == "" {
		return fiber.NewError(http.StatusBadRequest, "content required")
	}

	comment, err := h.comments.Update(c.UserContext(), c.Params("id"), c.Params("commentId"), req.Content)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"comment": comment}})
}

// DeleteComment handles DELETE /issues/:id/comments/:commentId.
func (h *IssuesHandler) DeleteComment(c *fiber.Ctx) error {
	if err := h.comments.Delete(c.UserContext(), c.Params("id"), c.Params("commentId")); err != nil {
		return mapBackendError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
