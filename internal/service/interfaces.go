package service

import (
	"context"

	"github.com/securevault/go-secure-vault/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, input models.UserInput) (models.User, error)
	Login(ctx context.Context, input models.UserInput) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CategoryService manages a user's category set. Every operation receives
// the authenticated requester's user ID; records owned by someone else are
// reported as not found.
type CategoryService interface {
	CreateCategory(ctx context.Context, requesterID string, input models.CategoryInput) (models.Category, error)
	ListCategories(ctx context.Context, requesterID string) ([]models.Category, error)
	UpdateCategory(ctx context.Context, requesterID, categoryID string, input models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, requesterID, categoryID string) error
}

// CredentialService manages vault items. Sealing and opening of the
// sensitive payload happens exclusively in this layer: repositories only
// ever see opaque envelopes, handlers only decrypted structures.
type CredentialService interface {
	CreateCredential(ctx context.Context, requesterID string, input models.CredentialInput) (models.Credential, error)
	GetCredential(ctx context.Context, requesterID, credentialID string) (models.Credential, error)
	ListCredentials(ctx context.Context, requesterID string, categoryID *string) ([]models.Credential, error)
	UpdateCredential(ctx context.Context, requesterID, credentialID string, update models.CredentialUpdate) (models.Credential, error)
	DeleteCredential(ctx context.Context, requesterID, credentialID string) error
}
