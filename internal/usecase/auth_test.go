//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/pkg/jwt"
	"buchungssystem/internal/pkg/password"
	"buchungssystem/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthUseCase(t *testing.T) (usecase.AuthUseCase, *jwt.Service) {
	t.Helper()

	userHash, err := password.HashPassword("haus-passwort")
	require.NoError(t, err)
	adminHash, err := password.HashPassword("admin-passwort")
	require.NoError(t, err)

	sessions := jwt.NewService("test-secret", time.Hour)
	uc := usecase.NewAuthUseCase(config.SessionConfig{
		Secret:            "test-secret",
		UserPasswordHash:  userHash,
		AdminPasswordHash: adminHash,
	}, sessions)
	return uc, sessions
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newTestAuthUseCase(t)

	t.Run("user password yields a user session", func(t *testing.T) {
		token, role, err := uc.Login(ctx, "haus-passwort")
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, role)

		parsed, err := sessions.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, parsed)
	})

	t.Run("admin password yields an admin session", func(t *testing.T) {
		token, role, err := uc.Login(ctx, "admin-passwort")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)

		parsed, err := sessions.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, parsed)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, "falsch")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, _, err := uc.Login(ctx, "")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	// When both hashes are set to the same password, the admin role wins.
	t.Run("admin hash is checked first", func(t *testing.T) {
		hash, err := password.HashPassword("geteilt")
		require.NoError(t, err)

		sessions := jwt.NewService("test-secret", time.Hour)
		uc := usecase.NewAuthUseCase(config.SessionConfig{
			Secret:            "test-secret",
			UserPasswordHash:  hash,
			AdminPasswordHash: hash,
		}, sessions)

		_, role, err := uc.Login(ctx, "geteilt")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
	})
}

func TestTokenValidator(t *testing.T) {
	_, sessions := newTestAuthUseCase(t)
	validator := usecase.NewTokenValidator(sessions)

	token, err := sessions.GenerateToken(user.RoleUser)
	require.NoError(t, err)

	role, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, role)

	_, err = validator.ValidateToken("not-a-token")
	require.ErrorIs(t, err, usecase.ErrTokenValidation)
}
