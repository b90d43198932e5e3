package dto

// RegisterRequest carries the signup form
type RegisterRequest struct {
	Email                string   `json:"email" binding:"required,email"`
	Username             string   `json:"username" binding:"required,min=3,max=30"`
	Password             string   `json:"password" binding:"required,min=8"`
	ProfilePhoto         *string  `json:"profilePhoto,omitempty"`
	InterestedCategories []string `json:"interestedCategories" binding:"required,min=1"`
}

// LoginRequest carries the login form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse returns an access/refresh token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	User  UserSummary   `json:"user"`
	Token TokenResponse `json:"token"`
}
