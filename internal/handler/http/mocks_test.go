package http

import (
	"context"
	"testing"

	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/service"
	"github.com/securevault/go-secure-vault/models"
)

// mockAuthService implements service.AuthService for handler tests.
// A nil function field makes the corresponding call succeed with a zero value.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, input models.UserInput) (models.User, error)
	loginFn        func(ctx context.Context, input models.UserInput) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, input models.UserInput) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, nil
	}
	return m.registerUserFn(ctx, input)
}

func (m *mockAuthService) Login(ctx context.Context, input models.UserInput) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, input)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "stub.jwt.token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockCategoryService struct {
	createFn func(ctx context.Context, requesterID string, input models.CategoryInput) (models.Category, error)
	listFn   func(ctx context.Context, requesterID string) ([]models.Category, error)
	updateFn func(ctx context.Context, requesterID, categoryID string, input models.CategoryInput) (models.Category, error)
	deleteFn func(ctx context.Context, requesterID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, requesterID string, input models.CategoryInput) (models.Category, error) {
	if m.createFn == nil {
		return models.Category{}, nil
	}
	return m.createFn(ctx, requesterID, input)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, requesterID string) ([]models.Category, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, requesterID)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, requesterID, categoryID string, input models.CategoryInput) (models.Category, error) {
	if m.updateFn == nil {
		return models.Category{}, nil
	}
	return m.updateFn(ctx, requesterID, categoryID, input)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, requesterID, categoryID string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, requesterID, categoryID)
}

type mockCredentialService struct {
	createFn func(ctx context.Context, requesterID string, input models.CredentialInput) (models.Credential, error)
	getFn    func(ctx context.Context, requesterID, credentialID string) (models.Credential, error)
	listFn   func(ctx context.Context, requesterID string, categoryID *string) ([]models.Credential, error)
	updateFn func(ctx context.Context, requesterID, credentialID string, update models.CredentialUpdate) (models.Credential, error)
	deleteFn func(ctx context.Context, requesterID, credentialID string) error
}

func (m *mockCredentialService) CreateCredential(ctx context.Context, requesterID string, input models.CredentialInput) (models.Credential, error) {
	if m.createFn == nil {
		return models.Credential{}, nil
	}
	return m.createFn(ctx, requesterID, input)
}

func (m *mockCredentialService) GetCredential(ctx context.Context, requesterID, credentialID string) (models.Credential, error) {
	if m.getFn == nil {
		return models.Credential{}, nil
	}
	return m.getFn(ctx, requesterID, credentialID)
}

func (m *mockCredentialService) ListCredentials(ctx context.Context, requesterID string, categoryID *string) ([]models.Credential, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, requesterID, categoryID)
}

func (m *mockCredentialService) UpdateCredential(ctx context.Context, requesterID, credentialID string, update models.CredentialUpdate) (models.Credential, error) {
	if m.updateFn == nil {
		return models.Credential{}, nil
	}
	return m.updateFn(ctx, requesterID, credentialID, update)
}

func (m *mockCredentialService) DeleteCredential(ctx context.Context, requesterID, credentialID string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, requesterID, credentialID)
}

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// replaced by empty ones so handlers never dereference a nil service.
func newTestHandler(t *testing.T, auth *mockAuthService, categories *mockCategoryService, credentials *mockCredentialService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if categories == nil {
		categories = &mockCategoryService{}
	}
	if credentials == nil {
		credentials = &mockCredentialService{}
	}

	return NewHandler(&service.Services{
		AuthService:       auth,
		CategoryService:   categories,
		CredentialService: credentials,
	}, logger.Nop())
}

// authedParseToken returns a ParseToken stub accepting any token string and
// resolving it to the given user ID.
func authedParseToken(userID string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: userID, SignedString: "stub"}, nil
	}
}
