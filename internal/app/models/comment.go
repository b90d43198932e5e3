package models

import "time"

// Comment belongs to exactly one post and one authoring user. Replies hang
// off a comment and are addressed only by (commentID, replyID); they are
// never reachable as top-level entities.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related data, loaded on demand
	Author  *User   `json:"author,omitempty"`
	Replies []Reply `json:"replies,omitempty"`
}

// Reply is a nested sub-entity of a comment, returned in creation order.
type Reply struct {
	ID        int64     `json:"id" db:"id"`
	CommentID int64     `json:"commentId" db:"comment_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Related data, loaded on demand
	Author *User `json:"author,omitempty"`
}

// LikeableKind names the three entity kinds the like ledger tracks.
type LikeableKind string

const (
	LikeablePost    LikeableKind = "post"
	LikeableComment LikeableKind = "comment"
	LikeableReply   LikeableKind = "reply"
)

// IsValidLikeableKind reports whether k names a known likeable entity kind.
func IsValidLikeableKind(k string) bool {
	switch LikeableKind(k) {
	case LikeablePost, LikeableComment, LikeableReply:
		return true
	}
	return false
}
