package dto

import "github.com/ssisdev/sisctl/internal/app/models"

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login. Register's token
// is deliberately ignored by the client; the user logs in separately.
type AuthResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}
