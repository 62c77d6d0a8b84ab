package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/akimenko/userdesk/internal/server/auth"
)

// contextKeyEmail is where the middleware stores the authenticated
// account's email on the echo context.
const contextKeyEmail = "email"

// Auth validates the bearer token and injects the subject email into
// the request context.
func Auth(jwtSecret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			email, err := auth.GetEmailFromToken(parts[1], jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(contextKeyEmail, email)

			return next(c)
		}
	}
}
