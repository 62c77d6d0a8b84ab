package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance with all routes registered. Login
// and the probes are open; everything under /api/users requires a
// bearer token.
func NewRouter(h *Handler, jwtSecret []byte) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("userdesk"))

	e.POST("/api/login", h.Login)
	e.GET("/health", h.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	users := e.Group("/api/users", Auth(jwtSecret))
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	return e
}
