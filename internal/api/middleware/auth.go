package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenHeader is the legacy header carrying the signed token.
const TokenHeader = "x-auth-token"

// ContextUserID is the echo context key holding the authenticated user id.
const ContextUserID = "user_id"

// Auth validates the token from the x-auth-token header and injects the
// authenticated user id into the request context. The error bodies match
// the legacy client's expectations exactly.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, auth denied")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
