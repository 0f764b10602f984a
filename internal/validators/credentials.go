package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldName targets the optional display name.
	FieldName = "name"
)

const (
	// MinPasswordLength is the minimum password length in bytes.
	MinPasswordLength = 8

	// MaxNameLength is the maximum display name length in characters.
	MaxNameLength = 128

	// MaxEmailLength is the longest address accepted (RFC 5321 path limit).
	MaxEmailLength = 254
)

var (
	emailRules = fmt.Sprintf("required,email,max=%d", MaxEmailLength)
	nameRules  = fmt.Sprintf("max=%d", MaxNameLength)
)

// CredentialsValidator validates account registration input.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements [Validator]. Supported types are [models.Registration]
// and *[models.Registration]. With no fields given, all fields are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegistration(ctx context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := v.validate.VarCtx(ctx, reg.Email, emailRules); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldPassword:
			// bcrypt limits bytes, validator's min/max count runes
			if len(reg.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(reg.Password) > crypto.MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldName:
			if err := v.validate.VarCtx(ctx, reg.Name, nameRules); err != nil {
				return fmt.Errorf("%w: %w", ErrNameTooLong, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
