package dto

// FeedResponse is the home feed page. Posts is capped to the configured page
// size and never contains a post in the viewer's seen set.
type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
}

// MarkSeenRequest records that the viewer has been shown a post
type MarkSeenRequest struct {
	PostID int64 `json:"postId" binding:"required"`
}
