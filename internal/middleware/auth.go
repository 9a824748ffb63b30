package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicad-labs/backend/internal/logging"
	"github.com/aicad-labs/backend/internal/models"
	"github.com/aicad-labs/backend/internal/repo"
	"github.com/aicad-labs/backend/internal/tokens"
)

const userContextKey = "auth_user"

// RequireAuth guards a route group: it verifies the bearer token from the
// Authorization header, resolves it to a stored user and rejects the
// request with 401 otherwise.
type RequireAuth struct {
	Tokens tokens.Service
	Repo   *repo.GormRepo
}

func NewRequireAuth(ts tokens.Service, rp *repo.GormRepo) *RequireAuth {
	return &RequireAuth{Tokens: ts, Repo: rp}
}

func (m *RequireAuth) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "require_auth")

		raw := c.Request().Header.Get(echo.HeaderAuthorization)
		if raw == "" {
			l.Warn("auth_rejected", "reason", "missing token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is missing!")
		}

		userID, err := m.Tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, tokens.ErrExpired) {
				l.Warn("auth_rejected", "reason", "token expired")
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has expired!")
			}
			l.Warn("auth_rejected", "reason", "token invalid")
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is invalid!")
		}

		user, err := m.Repo.UserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				l.Warn("auth_rejected", "reason", "user not found", "user_id", userID)
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found!")
			}
			l.Error("auth_lookup_failed", "user_id", userID, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil outside a
// guarded route.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(userContextKey).(*models.User)
	return u
}
