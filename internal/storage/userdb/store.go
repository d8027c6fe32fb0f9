// Package userdb implements UserStore using BadgerHold.
package userdb

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/models"
)

// Store implements interfaces.UserStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new UserStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create userdb path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open userdb at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("UserDB opened")
	return &Store{db: db, logger: logger}, nil
}

// FindByUsername returns the account for a username, or (nil, nil) when no
// such account exists.
func (s *Store) FindByUsername(_ context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.FindOne(&user, badgerhold.Where("Username").Eq(username))
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user '%s': %w", username, err)
	}
	return &user, nil
}

// Insert stores a new account and returns its generated ID. A duplicate
// username is rejected.
func (s *Store) Insert(ctx context.Context, user *models.User) (string, error) {
	existing, err := s.FindByUsername(ctx, user.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("username '%s' already exists", user.Username)
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if err := s.db.Insert(user.ID, user); err != nil {
		return "", fmt.Errorf("failed to insert user '%s': %w", user.Username, err)
	}

	s.logger.Debug().Str("user_id", user.ID).Str("username", user.Username).Msg("User created")
	return user.ID, nil
}

// Close shuts down the BadgerHold database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ensure Store implements UserStore
var _ interfaces.UserStore = (*Store)(nil)
