package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	Password     string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	ProfilePhoto *string   `json:"profilePhoto,omitempty" db:"profile_photo"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Related data, loaded on demand
	InterestedCategories []string `json:"interestedCategories,omitempty"`
}

// Notification is an inbox entry appended as a side effect of like, comment
// and reply actions on the recipient's content. Seen stays false until the
// recipient acknowledges the inbox.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Seen      bool      `json:"seen" db:"seen"`
	CreatedAt time.Time `json:"date" db:"created_at"`
	PostID    *int64    `json:"postId,omitempty" db:"post_id"`
	CommentID *int64    `json:"commentId,omitempty" db:"comment_id"`
	ReplyID   *int64    `json:"replyId,omitempty" db:"reply_id"`
}
