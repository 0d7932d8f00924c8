package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revaissue/webclient/internal/domain"
)

// IssueClient reads issues from the tracker backend.
type IssueClient struct {
	c *Client
}

// NewIssueClient builds the client.
func NewIssueClient(c *Client) *IssueClient {
	return &IssueClient{c: c}
}

// List returns all issues.
func (i *IssueClient) List(ctx context.Context) ([]domain.Issue, error) {
	var out []domain.Issue
	if err := i.c.doJSON(ctx, http.MethodGet, "/issues", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns issues created by or assigned to the given user.
func (i *IssueClient) ListByUser(ctx context.Context, userID string) ([]domain.Issue, error) {
	var out []domain.Issue
	path := fmt.Sprintf("/issues/user/%s", url.PathEscape(userID))
	if err := i.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
