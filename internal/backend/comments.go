package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/revaissue/webclient/internal/domain"
)

// CommentClient manages comments nested under issues.
type CommentClient struct {
	c *Client
}

// NewCommentClient builds the client.
func NewCommentClient(c *Client) *CommentClient {
	return &CommentClient{c: c}
}

type commentBody struct {
	Content string `json:"content"`
}

// ListByIssue returns an issue's comments.
func (cc *CommentClient) ListByIssue(ctx context.Context, issueID string) ([]domain.Comment, error) {
	var out []domain.Comment
	path := fmt.Sprintf("/issues/%s/comments", url.PathEscape(issueID))
	if err := cc.c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a comment to an issue.
func (cc *CommentClient) Create(ctx context.Context, issueID, content string) (*domain.Comment, error) {
	var out domain.Comment
	path := fmt.Sprintf("/issues/%s/comments", url.PathEscape(issueID))
	if err := cc.c.doJSON(ctx, http.MethodPost, path, commentBody{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update rewrites a comment's content.
func (cc *CommentClient) Update(ctx context.Context, issueID, commentID, content string) (*domain.Comment, error) {
	var out domain.Comment
	path := fmt.Sprintf("/issues/%s/comments/%s", url.PathEscape(issueID), url.PathEscape(commentID))
	if err := cc.c.doJSON(ctx, http.MethodPut, path, commentBody{Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a comment.
func (cc *CommentClient) Delete(ctx context.Context, issueID, commentID string) error {
	path := fmt.Sprintf("/issues/%s/comments/%s", url.PathEscape(issueID), url.PathEscape(commentID))
	return cc.c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
