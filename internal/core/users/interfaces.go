package users

import "context"

// Service defines the business logic interface for the status feature
type Service interface {
	// GetStatus returns the user's current status string
	GetStatus(ctx context.Context, userID string) (string, error)

	// UpdateStatus replaces the user's status string
	UpdateStatus(ctx context.Context, userID, status string) (string, error)
}

// UserRepository defines the data access interface for users.
// The post lifecycle service uses FindByID and Save to maintain the
// denormalized owner index on create and delete.
type UserRepository interface {
	// FindByID retrieves a user by id, ErrUserNotFound if absent
	FindByID(ctx context.Context, id string) (*User, error)

	// Save persists the user's mutable fields (name, status, post index)
	Save(ctx context.Context, user *User) error
}
