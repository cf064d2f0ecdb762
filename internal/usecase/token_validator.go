package usecase

import (
	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/pkg/jwt"
)

// TokenValidator provides session verification for the auth middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Role, error)
}

type tokenValidatorImpl struct {
	sessions *jwt.Service
}

func NewTokenValidator(sessions *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		sessions: sessions,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Role, error) {
	role, err := t.sessions.ValidateToken(tokenString)
	if err != nil {
		return "", ErrTokenValidation
	}
	return role, nil
}
