package dto

import "time"

// RegisterRequest defines the payload for local account registration.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	DisplayName     string `json:"displayName" binding:"omitempty,max=50"`
	DefaultCurrency string `json:"defaultCurrency" binding:"omitempty,currency"`
}

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels in
// an HTTP-only cookie, never in the body.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
