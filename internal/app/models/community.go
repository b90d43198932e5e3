package models

import "time"

// Community represents a topic community users can join and post into
type Community struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Photo       *string   `json:"photo,omitempty" db:"photo"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related data, loaded on demand
	MemberCount int64 `json:"memberCount,omitempty"`
	PostCount   int64 `json:"postCount,omitempty"`
}

// CommunityMember represents a user's membership in a community. The creator
// is inserted as the first member at creation time.
type CommunityMember struct {
	CommunityID int64     `json:"communityId" db:"community_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	JoinedAt    time.Time `json:"joinedAt" db:"joined_at"`
}

// Categories a community can be filed under. Signup interest selection draws
// from the same set.
var Categories = []string{
	"Technology",
	"Food",
	"Sports",
	"Music",
	"Art",
	"Gaming",
	"Travel",
	"Science",
}

// IsValidCategory reports whether c is one of the known category labels.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
