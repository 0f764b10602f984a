package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthValidationService validates registration input before it reaches the
// wrapped AuthService. Every other call is passed through unchanged; login
// input is deliberately not validated beyond normalization.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	return v.inner.Login(ctx, email, password)
}

func (v *AuthValidationService) Register(ctx context.Context, registration models.Registration) (LoginResult, error) {
	if err := v.validator.Validate(ctx, registration); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, registration)
}

func (v *AuthValidationService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.Profile(ctx, userID)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
