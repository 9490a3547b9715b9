package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string `json:"username"` // email or display name
	Password string `json:"password"`
}

// UserContext is the minimal identity embedded in the token, consumed by
// the frontend and by downstream handlers as the caller's capability.
type UserContext struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	UserContext UserContext `json:"user_context"`
}

type SessionResponse struct {
	Status         string      `json:"status"`
	Datetime       time.Time   `json:"datetime"`
	TokenExpiresAt time.Time   `json:"token_expiration"`
	UserContext    UserContext `json:"user_context"`
}
