package web

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/events"
	"github.com/revaissue/webclient/internal/guard"
	"github.com/revaissue/webclient/internal/session"
	apperrors "github.com/revaissue/webclient/pkg/util"
)

// LoginRoute is where rejected navigations are sent. Denials are
// silent: no error payload reaches the view layer.
const LoginRoute = "/login"

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger))
	app.Use(requestLogger(logger))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					err = apperrors.NewDomainError("REQUEST_FAILED", fiberErr.Message, fiberErr.Code, nil)
				}
				domainErr := apperrors.ToDomainError(err)
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}

// RequireAuthorized gates protected views through the route authorizer.
// A rejection of either flavor redirects to the login route with no
// message. The probe runs under the request's context so a navigation
// abandoned mid-check cancels it and its verdict is discarded.
func RequireAuthorized(authorizer *guard.Authorizer, oracle *session.Oracle, dispatcher events.Dispatcher, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		decision := authorizer.Authorize(ctx)

		subject := ""
		if principal, ok := oracle.CurrentPrincipal(ctx); ok {
			subject = principal.Username
		}
		publishRouteEvent(ctx, dispatcher, decision, subject, c.Path())

		if !decision.Admitted() {
			logger.Debug("navigation denied",
				zap.String("path", c.Path()),
				zap.String("state", string(decision.State)),
			)
			return c.Redirect(LoginRoute, fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireRole additionally branches on the resolved principal's role.
// Like the rest of the guard this is advisory display gating, not the
// authoritative boundary.
func RequireRole(oracle *session.Oracle, allowed ...auth.Role) fiber.Handler {
	allowedSet := make(map[auth.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		res := oracle.Resolve(c.UserContext())
		if !res.Identified {
			return c.Redirect(LoginRoute, fiber.StatusFound)
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, ok := allowedSet[res.Principal.Role]; !ok {
			return c.Redirect(LoginRoute, fiber.StatusFound)
		}
		return c.Next()
	}
}

func publishRouteEvent(ctx context.Context, dispatcher events.Dispatcher, decision guard.Decision, subject, path string) {
	if dispatcher == nil {
		return
	}
	eventType := events.EventRouteRejected
	if decision.Admitted() {
		eventType = events.EventRouteAdmitted
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Path:      path,
		Timestamp: time.Now(),
		Detail:    string(decision.State),
	})
}
