package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/securevault/go-secure-vault/models"
)

// hexColorPattern matches the #RRGGBB form used by category colors.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// VaultInputValidator validates the client-supplied input structures of the
// vault API: user registration/login input, category input and credential
// input.
type VaultInputValidator struct {
}

func NewVaultInputValidator() Validator {
	return &VaultInputValidator{}
}

func (v *VaultInputValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.UserInput:
		return v.validateUserInput(value)
	case *models.UserInput:
		return v.validateUserInput(*value)

	case models.CategoryInput:
		return v.validateCategoryInput(value)
	case *models.CategoryInput:
		return v.validateCategoryInput(*value)

	case models.CredentialInput:
		return v.validateCredentialInput(value)
	case *models.CredentialInput:
		return v.validateCredentialInput(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *VaultInputValidator) validateUserInput(input models.UserInput) error {
	if input.Email == "" {
		return ErrEmptyEmail
	}
	if input.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateCategoryInput checks the name presence, the closed icon set and the
// color format.
func (v *VaultInputValidator) validateCategoryInput(input models.CategoryInput) error {
	if input.Name == "" {
		return ErrEmptyCategoryName
	}
	if !models.IsValidCategoryIcon(input.Icon) {
		return fmt.Errorf("%w: %q", ErrUnknownIcon, input.Icon)
	}
	if !hexColorPattern.MatchString(input.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, input.Color)
	}

	return nil
}

func (v *VaultInputValidator) validateCredentialInput(input models.CredentialInput) error {
	if input.Title == "" {
		return ErrEmptyTitle
	}
	if input.CategoryID == "" {
		return ErrEmptyCategoryID
	}

	return nil
}
