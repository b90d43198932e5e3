package dto

import "time"

// AddCommentRequest appends a comment to a post
type AddCommentRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// AddReplyRequest appends a reply to a comment
type AddReplyRequest struct {
	PostID int64  `json:"postId" binding:"required"`
	Text   string `json:"text" binding:"required,max=2000"`
}

// ReplyResponse carries one reply inside its parent comment, with a
// back-reference to the parent comment id.
type ReplyResponse struct {
	ID            int64       `json:"id"`
	CommentID     int64       `json:"commentId"`
	Text          string      `json:"text"`
	Likes         int         `json:"likes"`
	LikedByViewer bool        `json:"likedByViewer"`
	CreatedAt     time.Time   `json:"createdAt"`
	Author        UserSummary `json:"author"`
}

// CommentResponse carries one comment with its full ordered reply list
type CommentResponse struct {
	ID            int64           `json:"id"`
	PostID        int64           `json:"postId"`
	Text          string          `json:"text"`
	Likes         int             `json:"likes"`
	LikedByViewer bool            `json:"likedByViewer"`
	CreatedAt     time.Time       `json:"createdAt"`
	Author        UserSummary     `json:"author"`
	Replies       []ReplyResponse `json:"replies"`
}

// ThreadResponse is a post's ordered comment tree
type ThreadResponse struct {
	Comments []CommentResponse `json:"comments"`
}
