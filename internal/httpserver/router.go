package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aicad-labs/backend/internal/middleware"
)

type Deps struct {
	Auth   *AuthHTTP
	Leads  *LeadsHTTP
	AuthMW *middleware.RequireAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/register", d.Auth.Register)
	e.POST("/login", d.Auth.Login)
	e.POST("/contact", d.Leads.Contact)
	e.POST("/waitlist", d.Leads.Waitlist)

	private := e.Group("")
	private.Use(d.AuthMW.Middleware)

	private.GET("/profile", d.Auth.GetProfile)
	private.PUT("/profile", d.Auth.UpdateProfile)
}
