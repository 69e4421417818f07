// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authRepo repository.AuthRepository
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(authRepo repository.AuthRepository, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		authRepo: authRepo,
		logger:   logger,
	}
}

// Login exchanges credentials for a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Info("Logging in", "username", input.Username)

	result, err := srv.authRepo.Login(ctx, &repository.Credentials{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	// A token with a role the console does not know cannot drive any view.
	if !result.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "unknown role %q", result.Role)
	}

	return &usecase.LoginOutput{
		Session: entity.Session{
			Token: result.Token,
			Role:  result.Role,
		},
		UserID:   result.UserID,
		Username: result.Username,
	}, nil
}
