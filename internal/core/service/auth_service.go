package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so both failure
// paths pay for a bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithThrottle enables failed-attempt tracking.
func WithThrottle(t ports.LoginThrottle) AuthOption {
	return func(s *AuthService) { s.throttle = t }
}

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// AuthService verifies credentials, issues session tokens and gates
// role-scoped operations.
type AuthService struct {
	users    ports.UserDirectory
	tokens   *TokenManager
	throttle ports.LoginThrottle
	now      func() time.Time
	log      zerolog.Logger
}

func NewAuthService(users ports.UserDirectory, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger, opts ...AuthOption) (*AuthService, error) {
	s := &AuthService{users: users, now: time.Now, log: log}
	for _, opt := range opts {
		opt(s)
	}

	tokens, err := NewTokenManager(jwtSecret, tokenTTL, s.now)
	if err != nil {
		return nil, err
	}
	s.tokens = tokens
	return s, nil
}

// Authenticate checks email and password against the directory. Unknown
// emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allowed(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("login throttle check failed, continuing")
		} else if !allowed {
			s.log.Info().Str("email", email).Msg("login rejected by throttle")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("authenticate: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return &ports.AuthResult{
		Token:     token,
		Role:      user.Role,
		UserID:    user.ID,
		Name:      user.Name,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Authorize verifies token and requires its role claim to equal requiredRole.
// Every failure collapses into domain.ErrUnauthorized.
func (s *AuthService) Authorize(token, requiredRole string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthorized
	}
	if claims.UserID == "" || claims.Role != requiredRole {
		return nil, domain.ErrUnauthorized
	}
	if claims.Role == domain.RoleClient && claims.ClientID == "" {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	s.log.Info().Str("email", email).Msg("login failed")
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
}
