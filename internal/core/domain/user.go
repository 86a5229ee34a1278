package domain

import "strings"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an account that can sign in to the dashboard.
// Client accounts are bound to exactly one Client record through ClientID.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         string `json:"role" bson:"role"`
	Name         string `json:"name" bson:"name"`
	ClientID     string `json:"clientId,omitempty" bson:"client_id,omitempty"`
}

// ValidRole reports whether role is one of the two dashboard roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient
}

// NormalizeEmail is the single rule used for storing and looking up emails:
// surrounding whitespace is dropped and the address is lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
