package domain

import "time"

// Claims is the identity carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ClientID  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
