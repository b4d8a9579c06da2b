package usecase

import (
	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (identity.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (identity.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return identity.Identity{}, errs.Mark(err, errs.ErrUnauthenticated)
	}

	return identity.New(claims.DisplayName, claims.Emails)
}
