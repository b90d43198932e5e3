package dto

// UserSummary is the denormalized author shape embedded in feed posts,
// comments and replies. Deleted authors degrade to placeholder values
// instead of failing the enclosing request.
type UserSummary struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
}

// PlaceholderUsername is shown when the author record no longer exists.
const PlaceholderUsername = "deleted user"

// ChangeUsernameRequest renames the account
type ChangeUsernameRequest struct {
	NewUsername string `json:"newUsername" binding:"required,min=3,max=30"`
}

// ChangePasswordRequest rotates the password after verifying the old one
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserEmailResponse returns the account email
type UserEmailResponse struct {
	Email string `json:"email"`
}

// ProfilePhotoResponse returns the stored photo reference after an upload
type ProfilePhotoResponse struct {
	ProfilePhoto string `json:"profilePhoto"`
}
