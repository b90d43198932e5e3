package dto

import "time"

// CreateCommunityRequest carries the community creation form. The photo is
// uploaded as multipart alongside these fields.
type CreateCommunityRequest struct {
	Name        string `form:"name" binding:"required,min=3,max=60"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required,max=150"`
}

// CommunitySummary is the denormalized community shape embedded in feed posts
type CommunitySummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Photo *string `json:"photo,omitempty"`
}

// CommunityResponse is the full community shape
type CommunityResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Photo       *string   `json:"photo,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"ownerId"`
	MemberCount int64     `json:"memberCount"`
	PostCount   int64     `json:"postCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommunityPhotoResponse returns the stored photo path after an update
type CommunityPhotoResponse struct {
	Photo string `json:"photo"`
}

// MembershipResponse answers join/leave/ownership checks
type MembershipResponse struct {
	IsJoined bool `json:"isJoined"`
}

// OwnershipResponse answers the community ownership check
type OwnershipResponse struct {
	IsOwner bool `json:"isOwner"`
}

// ExploreCategoryResponse groups top communities under one category for the
// explore view
type ExploreCategoryResponse struct {
	Category    string              `json:"category"`
	Communities []CommunityResponse `json:"communities"`
}
