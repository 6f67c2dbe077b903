package domain

import "time"

// Client is a registered customer account as returned by the backend.
type Client struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}
