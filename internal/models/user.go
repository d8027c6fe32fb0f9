package models

import "time"

// User represents a user account stored in finpulse-server.
type User struct {
	ID           string    `json:"id" badgerhold:"key"`
	Username     string    `json:"username" badgerhold:"unique"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
