package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie that carries the signed session token.
// Sessions travel via cookie, not an Authorization header: the consumers are
// browser pages, and an HttpOnly cookie keeps the token away from page
// scripts.
const SessionCookieName = "salon_session"

var errNoSession = errors.New("no valid session")

// SessionClaims are the identity fields embedded in the session token.
type SessionClaims struct {
	UserID   string
	Username string
	Role     string
}

// sessionFromRequest extracts and verifies the session cookie. Both the Auth
// middleware and the PageGuard use this single decode path.
func sessionFromRequest(c echo.Context, jwtSecret string) (*SessionClaims, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, errNoSession
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, errNoSession
	}

	sc := &SessionClaims{}
	sc.UserID, _ = claims["sub"].(string)
	sc.Username, _ = claims["username"].(string)
	sc.Role, _ = claims["role"].(string)
	if sc.Role == "" {
		return nil, errNoSession
	}
	return sc, nil
}
