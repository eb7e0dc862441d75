package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// AccessHandler is the page-level half of the dual access check: clients call
// it after session data loads to re-validate a route reached via client-side
// navigation. It evaluates the same domain.IsAllowed table as the edge guard.
type AccessHandler struct{}

func NewAccessHandler() *AccessHandler {
	return &AccessHandler{}
}

type accessCheckResponse struct {
	Path     string `json:"path"`
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// Check handles GET /v1/access/check?path=/dashboard.
//
// @Summary      Check whether the current role may view a path
// @Tags         access
// @Produce      json
// @Param        path  query     string  true  "Page path to check"
// @Success      200   {object}  accessCheckResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}

	_, _, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	resp := accessCheckResponse{Path: path, Allowed: domain.IsAllowed(path, role)}
	if !resp.Allowed {
		resp.Redirect = domain.DefaultLanding(role)
	}
	return c.JSON(http.StatusOK, resp)
}
