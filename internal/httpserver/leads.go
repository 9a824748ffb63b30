package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicad-labs/backend/internal/logging"
	"github.com/aicad-labs/backend/internal/service"
)

type LeadsHTTP struct {
	Svc *service.AuthService
}

func (h *LeadsHTTP) Contact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact")

	var req struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}

	if err := h.Svc.Contact(ctx, req.Email, req.Message); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("contact_rejected", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
		}
		l.Error("contact_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Message received successfully",
	})
}

func (h *LeadsHTTP) Waitlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "waitlist")

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("waitlist_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	if err := h.Svc.JoinWaitlist(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("waitlist_rejected", "status", 400)
			return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
		}
		l.Error("waitlist_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Added to waitlist successfully",
	})
}
