package models

import "time"

// User represents a user account in the system.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never expose this to the client
	CreatedAt    time.Time  `json:"createdAt"`
	LastSignInAt *time.Time `json:"lastSignInAt,omitempty"` // Derived from the logins table
	AvatarURL    *string    `json:"avatarUrl,omitempty"`    // Derived from the profiles table
}
