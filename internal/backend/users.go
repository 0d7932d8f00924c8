package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revaissue/webclient/internal/domain"
)

// UserClient reads tracker accounts.
type UserClient struct {
	c *Client
}

// NewUserClient builds the client.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// List returns all users.
func (u *UserClient) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := u.c.doJSON(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByProject returns the users assigned to a project.
func (u *UserClient) ListByProject(ctx context.Context, projectID string) ([]domain.User, error) {
	var out []domain.User
	path := fmt.Sprintf("/users/projects/%s/users", url.PathEscape(projectID))
	if err := u.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
