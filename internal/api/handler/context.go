package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the session claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the middleware
// ran on this route.
func ctxClaims(c echo.Context) (userID, username, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	username, _ = c.Get("username").(string)
	return userID, username, role, nil
}
