package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials carries the login form straight through to the upstream; the
// console never inspects or stores the password.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the upstream's answer to a successful login.
type LoginResult struct {
	Token    string      `json:"token"`
	Role     entity.Role `json:"role"`
	UserID   int64       `json:"userId"`
	Username string      `json:"username"`
}

// AuthRepository exchanges credentials for a bearer token.
type AuthRepository interface {
	// Login authenticates against the inventory API.
	Login(ctx context.Context, creds *Credentials) (*LoginResult, error)
}
