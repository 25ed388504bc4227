package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/metrics"
	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the resolved
// principal.
const PrincipalKey = "principal"

// Auth validates the bearer token and injects the resolved principal into
// the context. Verification re-resolves the account behind the claims, so a
// structurally valid token for a deleted account is rejected here, before
// any handler runs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := tokens.Verify(c.Request().Context(), parts[1])
			if err != nil {
				var ae *domain.AuthError
				if errors.As(err, &ae) {
					metrics.AuthFailuresTotal.WithLabelValues(string(ae.Kind)).Inc()
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, *principal)

			return next(c)
		}
	}
}
