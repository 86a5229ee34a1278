package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// recordFailureScript increments the counter and starts the window on the first hit.
var recordFailureScript = redis.NewScript(`
local c = redis.call("INCR", KEYS[1])
if c == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return c
`)

// LoginThrottle counts failed logins per email in a fixed window.
// Key format: login:fail:<normalized_email>
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

// NewLoginThrottle locks an email out once maxFailures failures happen
// inside window. Non-positive values fall back to 5 failures per 15 minutes.
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxFailures: maxFailures, window: window}
}

// Allowed reports whether another attempt may be made for email.
func (t *LoginThrottle) Allowed(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login throttle check: %w", err)
	}
	return n < t.maxFailures, nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	if err := recordFailureScript.Run(ctx, t.client, []string{t.key(email)}, t.window.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("login throttle record: %w", err)
	}
	return nil
}

func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login:fail:" + email
}
