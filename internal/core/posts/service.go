package posts

import (
	"context"
	"log"
	"strings"

	"Snapfeed/internal/core/assets"
	"Snapfeed/internal/core/users"
)

type postService struct {
	repo     Repository
	userRepo users.UserRepository
	store    assets.Store
}

// NewPostService creates a new post lifecycle service.
// The asset store is a constructed, injected client; credentials are
// bound at startup, never read from ambient state here.
func NewPostService(repo Repository, userRepo users.UserRepository, store assets.Store) Service {
	return &postService{
		repo:     repo,
		userRepo: userRepo,
		store:    store,
	}
}

// List returns one page of posts plus the total post count.
// Flow: count first, then fetch the window, so totalItems reflects the
// whole table regardless of the pagination window. No side effects.
func (s *postService) List(ctx context.Context, page, perPage int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return nil, NewValidationError("perPage", "perPage must be positive")
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, NewStorageError("count posts", err)
	}

	items, err := s.repo.FindPage(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return nil, NewStorageError("list posts", err)
	}

	return &Page{Posts: items, TotalItems: total}, nil
}

// Get returns the post or ErrNotFound. No side effects.
func (s *postService) Get(ctx context.Context, postID string) (*Post, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, NewStorageError("get post", err)
	}
	return post, nil
}

// Create creates a new post owned by the caller.
// Flow, each step gating the next:
//  1. Upload the file to the asset store
//  2. Load the caller's user record (absence means an inconsistent
//     session; abort before persisting anything)
//  3. Insert the post with creator, snapshot author name, asset fields
//  4. Register the post id in the owner index and save the user
//
// A step-4 failure after step 3 leaves the post unindexed; that gap is
// logged, not retried.
func (s *postService) Create(ctx context.Context, in CreateInput) (*Post, error) {
	// 1. Upload image
	asset, err := s.store.Upload(ctx, in.FilePath)
	if err != nil {
		return nil, err
	}

	// 2. Load caller
	user, err := s.userRepo.FindByID(ctx, in.CallerID)
	if err != nil {
		if err == users.ErrUserNotFound {
			return nil, users.ErrUserNotFound
		}
		return nil, NewStorageError("load caller", err)
	}

	// 3. Insert post
	post := &Post{
		Title:        in.Title,
		Content:      in.Content,
		ImageURL:     asset.URL,
		ImageAssetID: asset.ID,
		CreatorID:    in.CallerID,
		AuthorName:   user.Name,
	}
	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, NewStorageError("insert post", err)
	}

	// 4. Register in owner index
	user.AddPostID(post.ID)
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Post exists but is not indexed under the user. Known
		// consistency gap; surfaced to the caller, not retried.
		log.Printf("[POST-CREATE] Warning: post %s created but owner index update failed for user %s: %v",
			post.ID, user.ID, err)
		return nil, NewStorageError("update owner index", err)
	}

	log.Printf("[POST-CREATE] Creator: %s, Post: %s", in.CallerID, post.ID)
	return post, nil
}

// Update mutates a post's title/content and optionally replaces its image.
// Flow:
//  1. Load post
//  2. Ownership gate
//  3. Validate title/content
//  4. Assign fields
//  5. If a new file is present: upload it, then delete the previous
//     asset, then swap in the new URL/id. Upload-then-delete, never the
//     reverse, so a failed upload cannot leave the post imageless.
//  6. Save
func (s *postService) Update(ctx context.Context, in UpdateInput) (*Post, error) {
	// 1. Load post
	post, err := s.repo.FindByID(ctx, in.PostID)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, NewStorageError("load post", err)
	}

	// 2. Ownership gate
	if !CanModify(post, in.CallerID) {
		return nil, ErrForbidden
	}

	// 3. Validate
	if strings.TrimSpace(in.Title) == "" {
		return nil, NewValidationError("title", "title cannot be empty")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, NewValidationError("content", "content cannot be empty")
	}

	// 4. Assign fields
	post.Title = in.Title
	post.Content = in.Content

	// 5. Optional image replacement
	if in.FilePath != "" {
		asset, err := s.store.Upload(ctx, in.FilePath)
		if err != nil {
			return nil, err
		}

		if post.ImageAssetID != "" {
			if err := s.store.Delete(ctx, post.ImageAssetID); err != nil {
				return nil, err
			}
		}

		post.ImageURL = asset.URL
		post.ImageAssetID = asset.ID
	}

	// 6. Save
	if err := s.repo.Save(ctx, post); err != nil {
		return nil, NewStorageError("save post", err)
	}

	log.Printf("[POST-UPDATE] Caller: %s, Post: %s", in.CallerID, post.ID)
	return post, nil
}

// Delete removes a post, its asset, and its owner index entry.
// Flow:
//  1. Load post
//  2. Ownership gate
//  3. Delete the asset; on failure the post record stays intact so the
//     asset id is not lost
//  4. Delete the post row
//  5. Remove the id from the owner index and save the user
//
// A step-5 failure after step 4 leaves the index stale; logged, not
// retried.
func (s *postService) Delete(ctx context.Context, callerID, postID string) error {
	// 1. Load post
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		if err == ErrNotFound {
			return ErrNotFound
		}
		return NewStorageError("load post", err)
	}

	// 2. Ownership gate
	if !CanModify(post, callerID) {
		return ErrForbidden
	}

	// 3. Delete asset
	if post.ImageAssetID != "" {
		if err := s.store.Delete(ctx, post.ImageAssetID); err != nil {
			return err
		}
	}

	// 4. Delete post row
	if err := s.repo.Delete(ctx, postID); err != nil {
		return NewStorageError("delete post", err)
	}

	// 5. Remove from owner index
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		log.Printf("[POST-DELETE] Warning: post %s deleted but owner %s could not be loaded: %v",
			postID, callerID, err)
		if err == users.ErrUserNotFound {
			return users.ErrUserNotFound
		}
		return NewStorageError("load owner", err)
	}
	user.RemovePostID(postID)
	if err := s.userRepo.Save(ctx, user); err != nil {
		log.Printf("[POST-DELETE] Warning: post %s deleted but owner index update failed for user %s: %v",
			postID, user.ID, err)
		return NewStorageError("update owner index", err)
	}

	log.Printf("[POST-DELETE] Caller: %s, Post: %s", callerID, postID)
	return nil
}
