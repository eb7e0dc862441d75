package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/api/metrics"
	"github.com/glowdesk/salon-api/internal/core/domain"
)

// PageGuard is the network-edge half of the dual access check. It runs before
// any page logic: unauthenticated visitors to a protected path are redirected
// to the login page with the original path in callbackUrl, and authenticated
// visitors whose role is denied are sent to their default landing page.
//
// The page-level guard (GET /v1/access/check) re-evaluates the same
// domain.IsAllowed table after session data loads, covering client-side
// navigation that never touches this middleware. Keeping both layers on one
// policy table means they cannot disagree for a given (path, role) pair.
func PageGuard(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if !domain.IsProtected(path) {
				return next(c)
			}

			claims, err := sessionFromRequest(c, jwtSecret)
			if err != nil {
				metrics.GuardRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				target := domain.LoginPath + "?callbackUrl=" + url.QueryEscape(path)
				return c.Redirect(http.StatusFound, target)
			}

			if !domain.IsAllowed(path, claims.Role) {
				metrics.GuardRedirectsTotal.WithLabelValues("role_denied").Inc()
				return c.Redirect(http.StatusFound, domain.DefaultLanding(claims.Role))
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
