// Package middleware provides the echo middleware shared by all routes:
// JWT verification, caller resolution, request logging and metrics.
package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"expenses/internal/auth"
	"expenses/internal/models"
	"expenses/internal/storage"
)

// callerKey is the echo context key under which the resolved caller is
// stored. A custom key avoids colliding with echo-jwt's default "user" key,
// which holds the raw claims.
const callerKey = "caller"

// JWT returns middleware that extracts the bearer token from the
// Authorization header and verifies its signature and expiry. The parsed
// *auth.Claims are stored in the context for ResolveCaller; the token class
// is not checked here so the same middleware protects both access-token
// routes and the refresh endpoint.
func JWT(tokens *auth.JWTManager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Validate(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return auth.ErrMissingToken
			}
			return auth.ErrInvalidToken
		},
	})
}

// Claims extracts the verified token claims set by JWT.
// Returns nil if the route was not JWT-protected.
func Claims(c echo.Context) *auth.Claims {
	claims, _ := c.Get("user").(*auth.Claims)
	return claims
}

// ResolveCaller turns the verified claims into a *models.User loaded from
// the store and makes it available via Caller. It requires an access-class
// token: presenting a refresh token to a resource endpoint fails with
// auth.ErrNotAccessToken (422), and a token whose subject no longer exists
// fails with auth.ErrInvalidToken (401).
func ResolveCaller(store storage.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := Claims(c)
			if claims == nil {
				return auth.ErrMissingToken
			}
			if claims.TokenType != auth.TokenTypeAccess {
				return auth.ErrNotAccessToken
			}

			userID, err := claims.UserID()
			if err != nil {
				return err
			}
			user, err := store.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				return err
			}
			if user == nil {
				return auth.ErrInvalidToken
			}

			c.Set(callerKey, user)
			return next(c)
		}
	}
}

// Caller extracts the resolved caller from the context.
// Returns nil if ResolveCaller did not run.
func Caller(c echo.Context) *models.User {
	user, _ := c.Get(callerKey).(*models.User)
	return user
}
