package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Auth validates the session cookie and injects claims into context.
// API requests without a valid session fail with 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := sessionFromRequest(c, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid session")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
