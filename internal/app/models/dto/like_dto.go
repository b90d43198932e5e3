package dto

// LikeResponse reports the resulting like state and count after an explicit
// like or unlike. Both operations are idempotent, so a retried request
// returns the same state instead of flipping it.
type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
