//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	for _, role := range []user.Role{user.RoleUser, user.RoleAdmin} {
		token, err := svc.GenerateToken(role)
		require.NoError(t, err)

		parsed, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
}

func TestValidateTokenErrors(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
