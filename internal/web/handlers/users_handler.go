package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/domain"
)

// UsersHandler serves the user-listing screens.
type UsersHandler struct {
	users *backend.UserClient
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *backend.UserClient) *UsersHandler {
	return &UsersHandler{users: users}
}

// userView carries a user with its role already classified, so screens
// never interpret raw role strings themselves.
type userView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      auth.Role  `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func userViews(users []domain.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userView{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.CanonicalRole(),
			CreatedAt: u.CreatedAt,
		})
	}
	return views
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"users": userViews(users)}})
}
