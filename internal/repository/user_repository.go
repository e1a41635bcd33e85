package repository

import (
	"context"

	"tech-discovery/internal/model"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Insert creates a new user and returns its id. Returns
	// errors.ErrUserExists when the email is already registered.
	Insert(ctx context.Context, user *model.User) (string, error)

	// FindByEmail retrieves a user by email
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateRole sets the role of the user with the given id
	UpdateRole(ctx context.Context, id string, role model.Role) error

	// SetSubscribed marks the user with the given email as subscribed
	SetSubscribed(ctx context.Context, email string) error

	// Count returns the total number of registered users
	Count(ctx context.Context) (int64, error)
}
