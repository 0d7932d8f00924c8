package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/repository"
)

const sessionTrailLimit = 200

// AuditHandler serves the audit-log screens: the backend's audit trail
// plus the client's own local session trail.
type AuditHandler struct {
	audit *backend.AuditClient
	trail repository.SessionEventRepository
}

// NewAuditHandler constructs handler. trail may be nil when no local
// persistence is configured.
func NewAuditHandler(audit *backend.AuditClient, trail repository.SessionEventRepository) *AuditHandler {
	return &AuditHandler{audit: audit, trail: trail}
}

// List handles GET /audit.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	logs, err := h.audit.List(c.UserContext())
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logs": logs}})
}

// ByEntityType handles GET /audit/entity/:entityType.
func (h *AuditHandler) ByEntityType(c *fiber.Ctx) error {
	logs, err := h.audit.ListByEntityType(c.UserContext(), c.Params("entityType"))
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logs": logs}})
}

// ByActor handles GET /audit/actor/:actorId.
func (h *AuditHandler) ByActor(c *fiber.Ctx) error {
	logs, err := h.audit.ListByActor(c.UserContext(), c.Params("actorId"))
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logs": logs}})
}

// SessionTrail handles GET /audit/session-trail with the locally
// recorded login/logout/navigation events.
func (h *AuditHandler) SessionTrail(c *fiber.Ctx) error {
	if h.trail == nil {
		return c.JSON(fiber.Map{"data": fiber.Map{"events": []repository.SessionEvent{}}})
	}
	events, err := h.trail.ListRecent(c.UserContext(), sessionTrailLimit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []repository.SessionEvent{}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"events": events}})
}
