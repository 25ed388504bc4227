package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teuslab/publishing-api/internal/api/middleware"
	"github.com/teuslab/publishing-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. Its
// presence proves the middleware ran; handlers behind auth fast-fail with
// 401 rather than calling a service with a zero principal.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || principal.Role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
