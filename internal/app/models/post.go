package models

import "time"

// MaxPostDescriptionLength bounds the description column.
const MaxPostDescriptionLength = 500

// Post belongs to exactly one community and one authoring user, both
// immutable once created. Likes is denormalized and always equals the number
// of post_likes rows; the pair is only ever updated inside one transaction.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	CommunityID int64     `json:"communityId" db:"community_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Description string    `json:"description" db:"description"`
	Media       *string   `json:"media,omitempty" db:"media"`
	Likes       int       `json:"likes" db:"likes"`
	UploadTime  time.Time `json:"uploadTime" db:"upload_time"`

	// Related data, loaded on demand
	Author       *User      `json:"author,omitempty"`
	Community    *Community `json:"community,omitempty"`
	CommentCount int        `json:"commentCount,omitempty"`
}
