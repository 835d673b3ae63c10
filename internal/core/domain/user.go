package domain

import "time"

// User is an account held by the local identity provider.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the session identity for the user.
func (u User) Identity() Identity {
	return Identity{Email: u.Email, Role: u.Role}
}
