package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Snapfeed/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// FindByID retrieves a user by their id
func (r *postgresUserRepo) FindByID(ctx context.Context, id string) (*users.User, error) {
	query := `
		SELECT id, name, email, status, post_ids, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Status,
		pq.Array(&user.PostIDs), &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Save persists the user's mutable fields including the post index
func (r *postgresUserRepo) Save(ctx context.Context, user *users.User) error {
	query := `
		UPDATE users
		SET name = $2, status = $3, post_ids = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Status, pq.Array(user.PostIDs),
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return users.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}
