package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

const claimsKey = "claims"

// Auth is the server-side role gate. It reads the bearer token, asks gate to
// authorize it for requiredRole and injects the claims into the context.
// Every failure yields the same 401.
func Auth(gate ports.Authorizer, requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := gate.Authorize(bearerToken(c.Request()), requiredRole)
			if err != nil {
				metrics.GateDenialsTotal.WithLabelValues(requiredRole).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims injected by Auth, if any.
func ClaimsFromContext(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
