package dto

import "time"

// NotificationResponse is one inbox entry
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Seen      bool      `json:"seen"`
	Date      time.Time `json:"date"`
	PostID    *int64    `json:"postId,omitempty"`
	CommentID *int64    `json:"commentId,omitempty"`
	ReplyID   *int64    `json:"replyId,omitempty"`
}

// NotificationListResponse is the inbox
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}
