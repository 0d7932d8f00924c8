package domain

import "time"

// Comment is a user remark attached to an issue.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Issue     *Issue    `json:"issue,omitempty"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
