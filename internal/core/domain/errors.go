package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrValidation           = errors.New("validation failed")
	ErrClientNotFound       = errors.New("client not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
