// Package usecase defines the application-specific business rules of the
// console, expressed as interfaces consumed by the delivery layer.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput carries the login form.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginOutput is everything the delivery layer needs to establish a session.
type LoginOutput struct {
	Session  entity.Session
	UserID   int64
	Username string
}

// AuthUsecase handles session establishment. Teardown is purely local
// (clearing the credential cookies) and lives with the session store.
type AuthUsecase interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
