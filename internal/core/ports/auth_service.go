package ports

import (
	"context"
	"time"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

// AuthResult is returned by a successful Authenticate call.
type AuthResult struct {
	Token     string
	Role      string
	UserID    string
	Name      string
	ExpiresAt time.Time
}

// Authorizer is the role gate consulted by every role-scoped endpoint.
type Authorizer interface {
	Authorize(token, requiredRole string) (*domain.Claims, error)
}

type AuthService interface {
	Authorizer
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
}

// LoginThrottle tracks failed login attempts per normalized email.
type LoginThrottle interface {
	Allowed(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
