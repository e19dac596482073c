package users

import "time"

// User represents an account in the database.
// PostIDs is the denormalized owner index: the ids of every post this
// user currently authors. Only the post lifecycle service mutates it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	PostIDs   []string  `json:"posts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddPostID appends a post id to the owner index if not already present.
func (u *User) AddPostID(postID string) {
	for _, id := range u.PostIDs {
		if id == postID {
			return
		}
	}
	u.PostIDs = append(u.PostIDs, postID)
}

// RemovePostID removes a post id from the owner index.
func (u *User) RemovePostID(postID string) {
	filtered := u.PostIDs[:0]
	for _, id := range u.PostIDs {
		if id != postID {
			filtered = append(filtered, id)
		}
	}
	u.PostIDs = filtered
}
