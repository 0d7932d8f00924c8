package domain

import (
	"time"

	"github.com/revaissue/webclient/internal/auth"
)

// User is a tracker account as reported by the backend. Role is kept
// raw on the wire and classified through auth.NormalizeRole by the
// consuming layer.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CanonicalRole classifies the user's raw role.
func (u User) CanonicalRole() auth.Role {
	return auth.NormalizeRole(u.Role)
}
