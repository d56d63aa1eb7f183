package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextUserIDKey is the echo context key under which Auth stores the
// authenticated user id (int64).
const ContextUserIDKey = "user_id"

// Auth validates the session token and injects the user id into context.
//
// The Authorization header carries the raw token; a conventional "Bearer "
// prefix is tolerated and stripped. Any missing, malformed, mis-signed, or
// expired token short-circuits with 401 and an empty body before the wrapped
// handler runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return c.NoContent(http.StatusUnauthorized)
			}
			if rest, ok := strings.CutPrefix(raw, "Bearer "); ok {
				raw = rest
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return c.NoContent(http.StatusUnauthorized)
			}

			// JSON numbers decode as float64.
			uid, ok := claims["user_id"].(float64)
			if !ok || uid <= 0 {
				return c.NoContent(http.StatusUnauthorized)
			}

			c.Set(ContextUserIDKey, int64(uid))
			return next(c)
		}
	}
}
