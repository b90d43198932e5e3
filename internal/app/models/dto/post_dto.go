package dto

import "time"

// CreatePostRequest carries the post creation form. Media is uploaded as
// multipart alongside these fields.
type CreatePostRequest struct {
	CommunityID int64  `form:"communityId" binding:"required"`
	Description string `form:"description" binding:"required,max=500"`
}

// PostResponse is the enriched post shape: author and community display
// fields are denormalized in so the caller never needs a second round trip.
type PostResponse struct {
	ID            int64            `json:"id"`
	Description   string           `json:"description"`
	Media         *string          `json:"media,omitempty"`
	Likes         int              `json:"likes"`
	LikedByViewer bool             `json:"likedByViewer"`
	CommentCount  int              `json:"commentCount"`
	UploadTime    time.Time        `json:"uploadTime"`
	Author        UserSummary      `json:"author"`
	Community     CommunitySummary `json:"community"`
}

// PostListResponse is a paginated page of posts
type PostListResponse struct {
	Posts          []PostResponse `json:"posts"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// LikedStateResponse answers the "has the viewer liked this" check
type LikedStateResponse struct {
	IsLiked bool `json:"isLiked"`
}
