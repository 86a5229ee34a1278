package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dogtraining/dashboard/internal/api/metrics"
	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		// A malformed body is a server error for this endpoint; %v keeps the
		// echo 400 from surfacing through errors.As.
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("decode login payload: %v", err)
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		Role:      result.Role,
		UserID:    result.UserID,
		Name:      result.Name,
		ExpiresAt: result.ExpiresAt.UTC(),
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
