package posts

import "time"

// Post represents a post row in the database.
// ImageAssetID is the store-issued identifier for the current image,
// persisted at upload time so deletion never has to re-derive it by
// parsing ImageURL.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	ImageAssetID string    `json:"-"`
	CreatorID    string    `json:"creator"`
	AuthorName   string    `json:"authorName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Page is one window of the post listing plus the total count across
// all pages.
type Page struct {
	Posts      []*Post `json:"posts"`
	TotalItems int     `json:"totalItems"`
}
