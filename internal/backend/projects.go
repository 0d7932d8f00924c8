package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revaissue/webclient/internal/domain"
)

// ProjectClient manages projects on the tracker backend.
type ProjectClient struct {
	c *Client
}

// NewProjectClient builds the client.
func NewProjectClient(c *Client) *ProjectClient {
	return &ProjectClient{c: c}
}

// List returns all projects.
func (p *ProjectClient) List(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := p.c.doJSON(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one project by id.
func (p *ProjectClient) Get(ctx context.Context, id string) (*domain.Project, error) {
	var out domain.Project
	path := fmt.Sprintf("/projects/%s", url.PathEscape(id))
	if err := p.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the projects the given user is assigned to.
func (p *ProjectClient) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var out []domain.Project
	path := fmt.Sprintf("/users/%s/projects", url.PathEscape(userID))
	if err := p.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new project.
func (p *ProjectClient) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	var out domain.Project
	if err := p.c.doJSON(ctx, http.MethodPost, "/projects", project, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the project with the given id.
func (p *ProjectClient) Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error) {
	var out domain.Project
	path := fmt.Sprintf("/projects/%s", url.PathEscape(id))
	if err := p.c.doJSON(ctx, http.MethodPut, path, project, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignUser adds a user to a project.
func (p *ProjectClient) AssignUser(ctx context.Context, projectID, userID string) error {
	path := fmt.Sprintf("/projects/%s/assign/%s", url.PathEscape(projectID), url.PathEscape(userID))
	return p.c.doJSON(ctx, http.MethodPost, path, struct{}{}, nil)
}
