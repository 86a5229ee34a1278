package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

// DefaultTokenTTL is the fixed session lifetime: seven days from issuance.
const DefaultTokenTTL = 7 * 24 * time.Hour

var errEmptySecret = errors.New("token: signing secret must not be empty")

// sessionClaims is the JWT payload. The user id travels in the registered
// "sub" claim.
type sessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration, now func() time.Time) (*TokenManager, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: now}, nil
}

// Issue signs a token for user. The role claim is always the user's own role.
func (m *TokenManager) Issue(user *domain.User) (string, domain.Claims, error) {
	issuedAt := m.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(m.ttl)

	claims := sessionClaims{
		Email:    user.Email,
		Role:     user.Role,
		ClientID: user.ClientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", domain.Claims{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, domain.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ClientID:  user.ClientID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse verifies the signature and expiry of raw and returns its claims.
// Only HS256 is accepted and an "exp" claim is mandatory.
func (m *TokenManager) Parse(raw string) (*domain.Claims, error) {
	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(raw, &sc, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tkn.Valid {
		return nil, fmt.Errorf("parse token: %w", jwt.ErrTokenSignatureInvalid)
	}

	claims := &domain.Claims{
		UserID:   sc.Subject,
		Email:    sc.Email,
		Role:     sc.Role,
		ClientID: sc.ClientID,
	}
	if sc.IssuedAt != nil {
		claims.IssuedAt = sc.IssuedAt.Time.UTC()
	}
	if sc.ExpiresAt != nil {
		claims.ExpiresAt = sc.ExpiresAt.Time.UTC()
	}
	return claims, nil
}
