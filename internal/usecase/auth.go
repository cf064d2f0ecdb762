package usecase

import (
	"context"
	"errors"

	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/pkg/jwt"
	"buchungssystem/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

// AuthUseCase implements the shared-password login: one password per role,
// no user accounts. The admin password is tried first, as in the original
// system.
type AuthUseCase interface {
	Login(ctx context.Context, plaintext string) (string, user.Role, error)
}

type authUseCaseImpl struct {
	cfg      config.SessionConfig
	sessions *jwt.Service
}

func NewAuthUseCase(cfg config.SessionConfig, sessions *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		cfg:      cfg,
		sessions: sessions,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, plaintext string) (string, user.Role, error) {
	role, err := a.resolveRole(plaintext)
	if err != nil {
		return "", "", err
	}

	token, err := a.sessions.GenerateToken(role)
	if err != nil {
		return "", "", ErrTokenGeneration
	}
	return token, role, nil
}

func (a *authUseCaseImpl) resolveRole(plaintext string) (user.Role, error) {
	if password.ComparePassword(a.cfg.AdminPasswordHash, plaintext) == nil {
		return user.RoleAdmin, nil
	}
	if password.ComparePassword(a.cfg.UserPasswordHash, plaintext) == nil {
		return user.RoleUser, nil
	}
	return "", ErrInvalidCredentials
}
