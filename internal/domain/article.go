package domain

import "time"

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment threads are one level deep: a comment either has no parent or
// its parent is itself a top-level comment.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"-"`
	UserID    string    `json:"-"`
	Username  string    `json:"username,omitempty"`
	ParentID  *string   `json:"parentId,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Comment `json:"replies,omitempty"`
}
