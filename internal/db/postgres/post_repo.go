package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"Snapfeed/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Count returns the total number of posts
func (r *postgresPostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// FindPage returns posts newest-first, skipping skip rows and returning
// at most limit. The id tiebreak keeps the order stable across pages.
func (r *postgresPostRepo) FindPage(ctx context.Context, skip, limit int) ([]*posts.Post, error) {
	query := `
		SELECT id, title, content, image_url, image_asset_id,
		       creator_id, author_name, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts page: %w", err)
	}
	defer rows.Close()

	var result []*posts.Post
	for rows.Next() {
		post := &posts.Post{}
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.ImageAssetID,
			&post.CreatorID, &post.AuthorName, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}

// FindByID retrieves a post by its id
func (r *postgresPostRepo) FindByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, title, content, image_url, image_asset_id,
		       creator_id, author_name, created_at, updated_at
		FROM posts
		WHERE id = $1`

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.ImageAssetID,
		&post.CreatorID, &post.AuthorName, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Insert persists a new post. The id is assigned here, at the storage
// layer, and written back along with the store-issued timestamps.
func (r *postgresPostRepo) Insert(ctx context.Context, post *posts.Post) error {
	post.ID = uuid.NewString()

	query := `
		INSERT INTO posts (id, title, content, image_url, image_asset_id, creator_id, author_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.ImageURL, post.ImageAssetID,
		post.CreatorID, post.AuthorName,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return fmt.Errorf("creator not found: %s", post.CreatorID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Save persists the mutable fields of an existing post.
// creator_id and author_name are immutable after creation and are
// deliberately absent from the SET list.
func (r *postgresPostRepo) Save(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, image_url = $4, image_asset_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.ImageURL, post.ImageAssetID,
	).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return posts.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	return nil
}

// Delete removes a post by id
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}
