package interfaces

import (
	"context"

	"github.com/finpulse/finpulse/internal/models"
)

// UserStore manages user accounts.
type UserStore interface {
	// FindByUsername returns the account for a username, or (nil, nil)
	// when no such account exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Insert stores a new account and returns its generated ID.
	// A duplicate username is rejected with an error.
	Insert(ctx context.Context, user *models.User) (string, error)

	Close() error
}
