package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	service := NewAuthService(mockAuthRepo, discardLogger())

	ctx := context.Background()
	mockAuthRepo.EXPECT().
		Login(ctx, &repository.Credentials{Username: "alice", Password: "secret"}).
		Return(&repository.LoginResult{
			Token:    "tok-123",
			Role:     entity.RoleShop,
			UserID:   9,
			Username: "alice",
		}, nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", output.Session.Token)
	assert.Equal(t, entity.RoleShop, output.Session.Role)
	assert.Equal(t, int64(9), output.UserID)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	service := NewAuthService(mockAuthRepo, discardLogger())

	ctx := context.Background()
	mockAuthRepo.EXPECT().
		Login(ctx, &repository.Credentials{Username: "alice", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownRoleRejected(t *testing.T) {
	mockAuthRepo := mockRepo.NewMockAuthRepository(t)
	service := NewAuthService(mockAuthRepo, discardLogger())

	ctx := context.Background()
	mockAuthRepo.EXPECT().
		Login(ctx, &repository.Credentials{Username: "bob", Password: "secret"}).
		Return(&repository.LoginResult{Token: "tok", Role: entity.Role("SUPERUSER")}, nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "secret"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
