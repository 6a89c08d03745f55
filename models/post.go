package models

import "time"

// Post represents a blog post written by a user.
type Post struct {
	// PostID is the internal unique identifier of the post.
	PostID int64 `json:"id"`

	// AuthorID references the user who wrote the post.
	AuthorID int64 `json:"author_id"`

	// AuthorName is the author's username, populated on single-post reads.
	// Empty in list results.
	AuthorName string `json:"author,omitempty"`

	// Title is the post headline (3–255 characters, trimmed).
	Title string `json:"title"`

	// Content is the post body (at least 10 characters).
	Content string `json:"content"`

	// Status reports whether the post is published. New posts default to false.
	Status bool `json:"status"`

	// CreatedAt is the creation timestamp, assigned by the database.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last-modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
