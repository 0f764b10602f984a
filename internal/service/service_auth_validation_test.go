package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: AuthService
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (LoginResult, error)
	registerFn func(ctx context.Context, registration models.Registration) (LoginResult, error)
	profileFn  func(ctx context.Context, userID int64) (models.User, error)
	createFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockInnerAuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return LoginResult{}, nil
}

func (m *mockInnerAuthService) Register(ctx context.Context, registration models.Registration) (LoginResult, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, registration)
	}
	return LoginResult{}, nil
}

func (m *mockInnerAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockInnerAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockInnerAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestAuthValidationService_Register_Invalid(t *testing.T) {
	called := false
	inner := &mockInnerAuthService{
		registerFn: func(ctx context.Context, registration models.Registration) (LoginResult, error) {
			called = true
			return LoginResult{}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Register(context.Background(), models.Registration{Email: "not-an-email", Password: "secret-password"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.False(t, called, "inner service must not be reached")
}

func TestAuthValidationService_Register_Valid(t *testing.T) {
	inner := &mockInnerAuthService{
		registerFn: func(ctx context.Context, registration models.Registration) (LoginResult, error) {
			return LoginResult{Outcome: LoginOK, User: models.User{UserID: 3}}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)

	result, err := svc.Register(context.Background(), models.Registration{Email: "a@b.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.User.UserID)
}

func TestAuthValidationService_PassThrough(t *testing.T) {
	inner := &mockInnerAuthService{
		loginFn: func(ctx context.Context, email, password string) (LoginResult, error) {
			// login input reaches the service untouched, even when malformed
			assert.Equal(t, "not-an-email", email)
			return LoginResult{Outcome: LoginEmailNotFound}, nil
		},
		profileFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID}, nil
		},
		createFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed"}, nil
		},
		parseFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{SignedString: tokenString}, nil
		},
	}
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	result, err := svc.Login(ctx, "not-an-email", "")
	require.NoError(t, err)
	assert.Equal(t, LoginEmailNotFound, result.Outcome)

	user, err := svc.Profile(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.UserID)

	token, err := svc.CreateToken(ctx, models.User{})
	require.NoError(t, err)
	assert.Equal(t, "signed", token.SignedString)

	token, err = svc.ParseToken(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", token.SignedString)
}
