package users

import (
	"context"
	"fmt"
	"strings"
)

type userService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) Service {
	return &userService{repo: repo}
}

// GetStatus returns the user's current status string
func (s *userService) GetStatus(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == ErrUserNotFound {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	return user.Status, nil
}

// UpdateStatus replaces the user's status string
func (s *userService) UpdateStatus(ctx context.Context, userID, status string) (string, error) {
	if strings.TrimSpace(status) == "" {
		return "", ErrEmptyStatus
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == ErrUserNotFound {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	user.Status = status
	if err := s.repo.Save(ctx, user); err != nil {
		return "", fmt.Errorf("failed to save user status: %w", err)
	}

	return user.Status, nil
}
