package posts

import "context"

// Service defines the business logic interface for the post lifecycle.
// Every operation runs as a fixed sequence of repository and asset-store
// calls; a failing step aborts the remaining steps.
type Service interface {
	// List returns one page of posts plus the total post count.
	// page < 1 falls back to 1; perPage must be positive.
	List(ctx context.Context, page, perPage int) (*Page, error)

	// Get returns the post or ErrNotFound
	Get(ctx context.Context, postID string) (*Post, error)

	// Create uploads the image, then persists a new post owned by the
	// caller and registers it in the caller's post index
	Create(ctx context.Context, in CreateInput) (*Post, error)

	// Update mutates title/content and optionally replaces the image.
	// Image replacement uploads the new asset before deleting the old
	// one so a failed upload never leaves the post without an image.
	Update(ctx context.Context, in UpdateInput) (*Post, error)

	// Delete removes the asset, the post, and the owner index entry,
	// in that order
	Delete(ctx context.Context, callerID, postID string) error
}

// CreateInput carries a validated create command plus the caller identity.
// FilePath points at a temp file owned by the caller; it must stay valid
// for the duration of the call.
type CreateInput struct {
	CallerID string
	Title    string
	Content  string
	FilePath string
}

// UpdateInput carries an update command. FilePath is empty when the
// image is not being replaced.
type UpdateInput struct {
	CallerID string
	PostID   string
	Title    string
	Content  string
	FilePath string
}

// Repository defines the data access interface for posts
type Repository interface {
	// Count returns the total number of posts
	Count(ctx context.Context) (int, error)

	// FindPage returns posts in stable query order, skipping skip rows
	// and returning at most limit
	FindPage(ctx context.Context, skip, limit int) ([]*Post, error)

	// FindByID retrieves a post by id, ErrNotFound if absent
	FindByID(ctx context.Context, id string) (*Post, error)

	// Insert persists a new post and fills in its assigned id and timestamps
	Insert(ctx context.Context, post *Post) error

	// Save persists the mutable fields of an existing post
	Save(ctx context.Context, post *Post) error

	// Delete removes a post by id
	Delete(ctx context.Context, id string) error
}
