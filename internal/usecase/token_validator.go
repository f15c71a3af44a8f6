package usecase

import (
	"pontomais/internal/domain/user"
	"pontomais/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is what a valid access token asserts about the caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, err
	}
	email, err := user.NewEmail(claims.Email)
	if err != nil {
		return Identity{}, err
	}

	return Identity{UserID: claims.UserID, Email: email.Value(), Role: role}, nil
}
