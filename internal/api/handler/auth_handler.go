package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/glowdesk/salon-api/internal/api/metrics"
	"github.com/glowdesk/salon-api/internal/api/middleware"
	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// AuthHandler handles login, logout, and session introspection. The session
// token travels in an HttpOnly cookie rather than a bearer header.
type AuthHandler struct {
	authService   ports.AuthService
	sessionTTL    time.Duration
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User *domain.User `json:"user"`
}

type sessionResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates credentials and sets the session cookie.
//
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, h.sessionTTL))
	return c.JSON(http.StatusOK, loginResponse{User: user})
}

// Logout clears the session cookie.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusNoContent)
}

// Session returns the claims of the current session. The page-level guard
// calls this after load to learn the viewer's role.
//
// @Summary      Current session claims
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	userID, username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
