package middleware

import (
	"net/http"
	"strings"

	"radsafe-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

// TokenVerifier is satisfied by *auth.TokenService.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and tags the
// request context with the token subject for audit attribution.
func RequireAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			sub, err := tokens.Verify(raw)
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": auth.ErrInvalidToken.Error()})
			}
			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithActor(req.Context(), sub)))
			return next(c)
		}
	}
}

// Authenticate is the lenient variant: a valid token sets the actor, anything
// else passes through anonymously.
func Authenticate(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
				if sub, err := tokens.Verify(raw); err == nil {
					req := c.Request()
					c.SetRequest(req.WithContext(auth.WithActor(req.Context(), sub)))
				}
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
