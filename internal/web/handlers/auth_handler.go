package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/events"
	"github.com/revaissue/webclient/internal/session"
)

// AuthHandler exposes the login, logout and account-creation screens.
type AuthHandler struct {
	oracle     *session.Oracle
	accounts   *backend.AuthClient
	dispatcher events.Dispatcher
}

// NewAuthHandler constructs handler.
func NewAuthHandler(oracle *session.Oracle, accounts *backend.AuthClient, dispatcher events.Dispatcher) *AuthHandler {
	return &AuthHandler{oracle: oracle, accounts: accounts, dispatcher: dispatcher}
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Login handles POST /login. A rejected issuance surfaces as a generic
// invalid-credentials message regardless of what the backend said.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginForm
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	ctx := c.UserContext()
	if _, err := h.oracle.Login(ctx, req.Username, req.Password); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return fiber.NewError(http.StatusUnauthorized, "invalid username or password")
		}
		return err
	}

	h.publish(c, events.EventSessionLogin, req.Username)

	res := h.oracle.Resolve(ctx)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"authenticated": res.Identified,
			"principal":     res.Principal,
		},
	})
}

// Logout handles POST /logout. Purely local: the credential slot is
// cleared and the browser is sent back to the login screen.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	subject := ""
	if principal, ok := h.oracle.CurrentPrincipal(ctx); ok {
		subject = principal.Username
	}

	if err := h.oracle.Logout(ctx); err != nil {
		return err
	}
	h.publish(c, events.EventSessionLogout, subject)

	return c.Redirect("/login", fiber.StatusFound)
}

// CreateAccount handles POST /create-account and forwards the backend's
// plain-text confirmation.
func (h *AuthHandler) CreateAccount(c *fiber.Ctx) error {
	var req accountForm
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	message, err := h.accounts.CreateAccount(c.UserContext(), req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		return mapBackendError(err)
	}
	return c.Status(http.StatusCreated).SendString(message)
}

func (h *AuthHandler) publish(c *fiber.Ctx, eventType events.EventType, subject string) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.UserContext(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Path:      c.Path(),
		Timestamp: time.Now(),
	})
}
