package dto

import (
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// UpdateUserRequest defines the structure for updating profile preferences.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	DisplayName     *string `json:"displayName" binding:"omitempty,max=50"`
	DefaultCurrency *string `json:"defaultCurrency" binding:"omitempty,currency"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID          string    `json:"userID"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"displayName"`
	DefaultCurrency string    `json:"defaultCurrency"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:          user.UserID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		DefaultCurrency: string(user.DefaultCurrency),
		CreatedAt:       user.CreatedAt,
	}
}
