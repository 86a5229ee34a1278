package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/middleware"
	"github.com/dogtraining/dashboard/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call:
//   - claims must be present (presence proves the gate ran).
//   - client role requires a non-empty client id.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if claims.Role == domain.RoleClient && claims.ClientID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return claims, nil
}
