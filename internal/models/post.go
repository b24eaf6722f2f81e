package models

import "time"

// Post is a piece of content published by a user
type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index:idx_posts_user_created,priority:1"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_posts_user_created,priority:2"`

	Author *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PostWithAuthor is a post joined with its author's username
type PostWithAuthor struct {
	Post
	Username string `json:"username"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}
