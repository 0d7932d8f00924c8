package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revaissue/webclient/internal/domain"
)

// AuditClient reads the backend's audit trail.
type AuditClient struct {
	c *Client
}

// NewAuditClient builds the client.
func NewAuditClient(c *Client) *AuditClient {
	return &AuditClient{c: c}
}

// List returns all audit entries.
func (a *AuditClient) List(ctx context.Context) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	if err := a.c.doJSON(ctx, http.MethodGet, "/audit", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByEntityType filters entries by entity type.
func (a *AuditClient) ListByEntityType(ctx context.Context, entityType string) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	path := fmt.Sprintf("/audit/entity/%s", url.PathEscape(entityType))
	if err := a.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByActor filters entries by acting user.
func (a *AuditClient) ListByActor(ctx context.Context, actorID string) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	path := fmt.Sprintf("/audit/actor/%s", url.PathEscape(actorID))
	if err := a.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
