package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

const testSecret = "test-secret"

type stubUserDirectory struct {
	users map[string]*domain.User
	err   error
}

type stubUser struct {
	user     domain.User
	password string
}

func newStubUserDirectory(t *testing.T, users ...stubUser) *stubUserDirectory {
	t.Helper()
	d := &stubUserDirectory{users: make(map[string]*domain.User)}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		user := u.user
		user.PasswordHash = string(hash)
		d.users[user.Email] = &user
	}
	return d
}

func (d *stubUserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubThrottle struct {
	blocked  bool
	failures map[string]int
	resets   int
	allowErr error
}

func (s *stubThrottle) Allowed(_ context.Context, _ string) (bool, error) {
	return !s.blocked, s.allowErr
}

func (s *stubThrottle) RecordFailure(_ context.Context, email string) error {
	if s.failures == nil {
		s.failures = make(map[string]int)
	}
	s.failures[email]++
	return nil
}

func (s *stubThrottle) Reset(_ context.Context, _ string) error {
	s.resets++
	return nil
}

func demoDirectory(t *testing.T) *stubUserDirectory {
	return newStubUserDirectory(t,
		stubUser{
			user:     domain.User{ID: "1", Email: "admin@dogtraining.com", Role: domain.RoleAdmin, Name: "Adalberto Alves"},
			password: "admin123",
		},
		stubUser{
			user:     domain.User{ID: "2", Email: "cliente@exemplo.com", Role: domain.RoleClient, Name: "Cliente Exemplo", ClientID: "c1"},
			password: "cliente123",
		},
	)
}

func newTestAuthService(t *testing.T, dir *stubUserDirectory, opts ...AuthOption) *AuthService {
	t.Helper()
	svc, err := NewAuthService(dir, testSecret, DefaultTokenTTL, zerolog.Nop(), opts...)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	if _, err := NewAuthService(demoDirectory(t), "", DefaultTokenTTL, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestAuthenticate_AdminSuccess(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestAuthService(t, demoDirectory(t), WithClock(func() time.Time { return now }))

	res, err := svc.Authenticate(context.Background(), "admin@dogtraining.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Role != domain.RoleAdmin || res.UserID != "1" || res.Name != "Adalberto Alves" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.ExpiresAt.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Fatalf("expected expiry 7 days out, got %s", res.ExpiresAt)
	}

	claims, err := svc.Authorize(res.Token, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if claims.UserID != "1" || claims.Email != "admin@dogtraining.com" || claims.ClientID != "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticate_ClientCarriesClientID(t *testing.T) {
	svc := newTestAuthService(t, demoDirectory(t))

	res, err := svc.Authenticate(context.Background(), "cliente@exemplo.com", "cliente123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %q", res.Role)
	}

	claims, err := svc.Authorize(res.Token, domain.RoleClient)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if claims.ClientID != "c1" {
		t.Fatalf("expected client id c1, got %q", claims.ClientID)
	}
}

func TestAuthenticate_EmailIsCaseInsensitive(t *testing.T) {
	svc := newTestAuthService(t, demoDirectory(t))

	if _, err := svc.Authenticate(context.Background(), "  Admin@DogTraining.com ", "admin123"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, demoDirectory(t))

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@dogtraining.com", "wrong"},
		{"unknown email", "nobody@example.com", "whatever"},
		{"empty email", "", "admin123"},
		{"empty password", "admin@dogtraining.com", ""},
		{"password of another user", "admin@dogtraining.com", "cliente123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Authenticate(context.Background(), tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if res != nil {
				t.Fatalf("expected no result, got %+v", res)
			}
			if err.Error() != domain.ErrInvalidCredentials.Error() {
				t.Fatalf("error text leaks detail: %q", err.Error())
			}
		})
	}
}

func TestAuthenticate_DirectoryError(t *testing.T) {
	dir := demoDirectory(t)
	dir.err = errors.New("connection refused")
	svc := newTestAuthService(t, dir)

	_, err := svc.Authenticate(context.Background(), "admin@dogtraining.com", "admin123")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestAuthenticate_Throttle(t *testing.T) {
	throttle := &stubThrottle{}
	svc := newTestAuthService(t, demoDirectory(t), WithThrottle(throttle))
	ctx := context.Background()

	_, _ = svc.Authenticate(ctx, "admin@dogtraining.com", "nope")
	_, _ = svc.Authenticate(ctx, "ghost@example.com", "nope")
	if throttle.failures["admin@dogtraining.com"] != 1 || throttle.failures["ghost@example.com"] != 1 {
		t.Fatalf("expected one failure per email, got %v", throttle.failures)
	}

	if _, err := svc.Authenticate(ctx, "admin@dogtraining.com", "admin123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	throttle.blocked = true
	if _, err := svc.Authenticate(ctx, "admin@dogtraining.com", "admin123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthenticate_ThrottleErrorFailsOpen(t *testing.T) {
	throttle := &stubThrottle{blocked: true, allowErr: errors.New("redis down")}
	svc := newTestAuthService(t, demoDirectory(t), WithThrottle(throttle))

	if _, err := svc.Authenticate(context.Background(), "admin@dogtraining.com", "admin123"); err != nil {
		t.Fatalf("expected login to proceed when throttle errors, got %v", err)
	}
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	svc := newTestAuthService(t, demoDirectory(t))
	ctx := context.Background()

	admin, _ := svc.Authenticate(ctx, "admin@dogtraining.com", "admin123")
	client, _ := svc.Authenticate(ctx, "cliente@exemplo.com", "cliente123")

	if _, err := svc.Authorize(client.Token, domain.RoleAdmin); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("client token on admin gate: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Authorize(admin.Token, domain.RoleClient); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("admin token on client gate: expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorize_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestAuthService(t, demoDirectory(t), WithClock(func() time.Time { return now }))

	res, err := svc.Authenticate(context.Background(), "admin@dogtraining.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(7*24*time.Hour - time.Second)
	if _, err := svc.Authorize(res.Token, domain.RoleAdmin); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	now = now.Add(2 * time.Second)
	if _, err := svc.Authorize(res.Token, domain.RoleAdmin); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expired token: expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorize_RejectsForeignTokens(t *testing.T) {
	svc := newTestAuthService(t, demoDirectory(t))
	res, err := svc.Authenticate(context.Background(), "admin@dogtraining.com", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	otherSecret, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role:             domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1", ExpiresAt: exp},
	}).SignedString([]byte("another-secret"))

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		Role:             domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1", ExpiresAt: exp},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role:             domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}).SignedString([]byte(testSecret))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role:             domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))

	clientWithoutID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role:             domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "2", ExpiresAt: exp},
	}).SignedString([]byte(testSecret))

	parts := strings.Split(res.Token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	cases := []struct {
		name, token, role string
	}{
		{"empty", "", domain.RoleAdmin},
		{"garbage", "not.a.token", domain.RoleAdmin},
		{"other secret", otherSecret, domain.RoleAdmin},
		{"alg none", unsigned, domain.RoleAdmin},
		{"missing exp", noExpiry, domain.RoleAdmin},
		{"missing sub", noSubject, domain.RoleAdmin},
		{"client without client id", clientWithoutID, domain.RoleClient},
		{"tampered payload", tampered, domain.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authorize(tc.token, tc.role); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
