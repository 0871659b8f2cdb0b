package service

import (
	"context"

	"github.com/securevault/go-secure-vault/models"
)

// Hand-written func-field fakes for the store interfaces. A nil field means
// "succeed with the zero value".

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

type mockCategoryRepository struct {
	createFn      func(ctx context.Context, category models.Category) (models.Category, error)
	createBatchFn func(ctx context.Context, categories []models.Category) ([]models.Category, error)
	getFn         func(ctx context.Context, categoryID string) (models.Category, error)
	getForUserFn  func(ctx context.Context, userID string) ([]models.Category, error)
	updateFn      func(ctx context.Context, category models.Category) (models.Category, error)
	deleteFn      func(ctx context.Context, categoryID, userID string) error
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	return category, nil
}

func (m *mockCategoryRepository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, categories)
	}
	return categories, nil
}

func (m *mockCategoryRepository) GetCategory(ctx context.Context, categoryID string) (models.Category, error) {
	if m.getFn != nil {
		return m.getFn(ctx, categoryID)
	}
	return models.Category{}, nil
}

func (m *mockCategoryRepository) GetUserCategories(ctx context.Context, userID string) ([]models.Category, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, category)
	}
	return category, nil
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, categoryID, userID)
	}
	return nil
}

type mockCredentialRepository struct {
	createFn     func(ctx context.Context, credential models.Credential) (models.Credential, error)
	getFn        func(ctx context.Context, credentialID string) (models.Credential, error)
	getForUserFn func(ctx context.Context, userID string, categoryID *string) ([]models.Credential, error)
	updateFn     func(ctx context.Context, credentialID, userID string, update models.CredentialUpdate, encrypted *models.Envelope) (models.Credential, error)
	deleteFn     func(ctx context.Context, credentialID, userID string) error
}

func (m *mockCredentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	if m.createFn != nil {
		return m.createFn(ctx, credential)
	}
	return credential, nil
}

func (m *mockCredentialRepository) GetCredential(ctx context.Context, credentialID string) (models.Credential, error) {
	if m.getFn != nil {
		return m.getFn(ctx, credentialID)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) GetUserCredentials(ctx context.Context, userID string, categoryID *string) ([]models.Credential, error) {
	if m.getForUserFn != nil {
		return m.getForUserFn(ctx, userID, categoryID)
	}
	return nil, nil
}

func (m *mockCredentialRepository) UpdateCredential(ctx context.Context, credentialID, userID string, update models.CredentialUpdate, encrypted *models.Envelope) (models.Credential, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, credentialID, userID, update, encrypted)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) DeleteCredential(ctx context.Context, credentialID, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, credentialID, userID)
	}
	return nil
}
