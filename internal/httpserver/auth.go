package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicad-labs/backend/internal/logging"
	"github.com/aicad-labs/backend/internal/middleware"
	"github.com/aicad-labs/backend/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Company  string `json:"company"`
		Bio      string `json:"bio"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	res, err := h.Svc.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Company:  req.Company,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_rejected", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, service.ErrEmailTaken):
			l.Warn("register_rejected", "status", 409, "reason", "email taken")
			return echo.NewHTTPError(http.StatusConflict, "User already exists")
		default:
			l.Error("register_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	l.Info("user_registered", "user_id", res.User.ID, "username", res.User.Username)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Missing email or password")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_rejected", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "Missing email or password")
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_rejected", "status", 401)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHTTP) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile_update")

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		Company *string `json:"company"`
		Bio     *string `json:"bio"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user := middleware.CurrentUser(c)
	updated, err := h.Svc.UpdateProfile(ctx, user, service.UpdateProfileInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Bio:     req.Bio,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("update_rejected", "status", 409, "reason", "email taken")
			return echo.NewHTTPError(http.StatusConflict, "Email already in use")
		}
		l.Error("update_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}
