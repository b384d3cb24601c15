package identity

import (
	"time"

	"github.com/aims/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserRequest is the body of a user create or update. Password is required
// on create and optional on update.
type UserRequest struct {
	Name     string  `json:"name" example:"Inventory User"`
	Email    string  `json:"email" example:"user@aims.com"`
	Role     string  `json:"role" example:"inventory_user"`
	Password *string `json:"password,omitempty" example:"password"`
}

// UserResponse represents a user in API responses. The password hash is never exposed.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@aims.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginResponse carries the issued access token and the signed-in user
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
