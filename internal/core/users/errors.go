package users

import "errors"

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyStatus is returned when a status update carries no text
	ErrEmptyStatus = errors.New("status cannot be empty")
)
