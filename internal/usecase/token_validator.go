package usecase

import (
	"smartbus/internal/domain/user"
	"smartbus/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken returns the actor id (rider id or terminal id) and role.
	ValidateToken(tokenString string) (string, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return "", "", err
	}

	return claims.Subject, role, nil
}
