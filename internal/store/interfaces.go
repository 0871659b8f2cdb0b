package store

import (
	"context"

	"github.com/securevault/go-secure-vault/models"
)

// UserRepository handles user account persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// CategoryRepository handles category persistence. Single-record lookups
// fetch by identifier alone; ownership checks belong to the service layer.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (models.Category, error)
	GetUserCategories(ctx context.Context, userID string) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// CredentialRepository handles credential persistence. The encrypted payload
// travels through this layer as an opaque envelope string; sealing and
// opening happen above, in the credential service.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetCredential(ctx context.Context, credentialID string) (models.Credential, error)
	GetUserCredentials(ctx context.Context, userID string, categoryID *string) ([]models.Credential, error)
	UpdateCredential(ctx context.Context, credentialID, userID string, update models.CredentialUpdate, encrypted *models.Envelope) (models.Credential, error)
	DeleteCredential(ctx context.Context, credentialID, userID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
