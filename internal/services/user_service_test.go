package services_test

import (
	"context"
	"testing"

	"luxemart/internal/models"
	"luxemart/internal/repositories"
	"luxemart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newUser(email, role string) models.User {
	return models.User{
		FirstName: strPtr("Asha"),
		LastName:  strPtr("Verma"),
		Email:     strPtr(email),
		Password:  strPtr("s3cret-pass"),
		Role:      role,
	}
}

func TestUserService_SignUpAndLogin(t *testing.T) {
	service := services.NewUserService(repositories.NewMockUserRepository())

	signed, err := service.SignUp(context.Background(), newUser("asha@example.com", ""))
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, signed.Role)
	assert.NotEmpty(t, signed.Token)
	assert.NotEmpty(t, signed.UserID)

	// Duplicate email conflicts.
	_, err = service.SignUp(context.Background(), newUser("asha@example.com", ""))
	assert.ErrorIs(t, err, services.ErrConflict)

	logged, err := service.Login(context.Background(), "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, signed.UserID, logged.UserID)

	_, err = service.Login(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserService_SignUp_Validation(t *testing.T) {
	service := services.NewUserService(repositories.NewMockUserRepository())

	bad := newUser("not-an-email", "")
	_, err := service.SignUp(context.Background(), bad)
	assert.ErrorIs(t, err, services.ErrValidation)

	short := newUser("ok@example.com", "")
	short.Password = strPtr("abc")
	_, err = service.SignUp(context.Background(), short)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestUserService_AdminLogin(t *testing.T) {
	service := services.NewUserService(repositories.NewMockUserRepository())

	_, err := service.SignUp(context.Background(), newUser("admin@example.com", models.RoleAdmin))
	require.NoError(t, err)
	_, err = service.SignUp(context.Background(), newUser("user@example.com", ""))
	require.NoError(t, err)

	token, err := service.AdminLogin(context.Background(), "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// A plain user cannot obtain an admin token.
	_, err = service.AdminLogin(context.Background(), "user@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.AdminLogin(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := services.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, services.VerifyPassword("hunter22", hash))
	assert.False(t, services.VerifyPassword("hunter23", hash))
}
