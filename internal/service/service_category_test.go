package service

import (
	"context"
	"testing"

	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryService(categories *mockCategoryRepository) CategoryService {
	return NewCategoryService(categories, NewOwnershipGuard(logger.Nop()), logger.Nop())
}

func validCategoryInput() models.CategoryInput {
	return models.CategoryInput{Name: "Banking", Icon: "building-columns", Color: "#22c55e"}
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	var stored models.Category
	categories := &mockCategoryRepository{
		createFn: func(_ context.Context, c models.Category) (models.Category, error) {
			stored = c
			return c, nil
		},
	}
	svc := newTestCategoryService(categories)

	created, err := svc.CreateCategory(context.Background(), "uid-1", validCategoryInput())

	require.NoError(t, err)
	assert.NotEmpty(t, created.CategoryID)
	assert.Equal(t, "uid-1", stored.UserID)
	assert.Equal(t, "Banking", stored.Name)
}

func TestCategoryService_CreateCategory_Validation(t *testing.T) {
	svc := newTestCategoryService(&mockCategoryRepository{})
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.CategoryInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   models.CategoryInput{Name: "", Icon: "folder", Color: "#22c55e"},
			wantErr: ErrValidationEmptyCategoryName,
		},
		{
			name:    "unknown icon",
			input:   models.CategoryInput{Name: "Banking", Icon: "rocket", Color: "#22c55e"},
			wantErr: ErrValidationUnknownIcon,
		},
		{
			name:    "bad color",
			input:   models.CategoryInput{Name: "Banking", Icon: "folder", Color: "green"},
			wantErr: ErrValidationInvalidColor,
		},
		{
			name:    "short hex color",
			input:   models.CategoryInput{Name: "Banking", Icon: "folder", Color: "#2c5"},
			wantErr: ErrValidationInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCategory(ctx, "uid-1", tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCategoryService_CreateCategory_NameTaken(t *testing.T) {
	categories := &mockCategoryRepository{
		createFn: func(_ context.Context, _ models.Category) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNameTaken
		},
	}
	svc := newTestCategoryService(categories)

	_, err := svc.CreateCategory(context.Background(), "uid-1", validCategoryInput())
	require.ErrorIs(t, err, store.ErrCategoryNameTaken)
}

func TestCategoryService_ListCategories(t *testing.T) {
	categories := &mockCategoryRepository{
		getForUserFn: func(_ context.Context, userID string) ([]models.Category, error) {
			assert.Equal(t, "uid-1", userID)
			return []models.Category{{CategoryID: "cat-1"}, {CategoryID: "cat-2"}}, nil
		},
	}
	svc := newTestCategoryService(categories)

	list, err := svc.ListCategories(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCategoryService_UpdateCategory_ForeignOwnerReportsNotFound(t *testing.T) {
	updateCalled := false
	categories := &mockCategoryRepository{
		getFn: func(_ context.Context, _ string) (models.Category, error) {
			return models.Category{CategoryID: "cat-1", UserID: "uid-owner"}, nil
		},
		updateFn: func(_ context.Context, c models.Category) (models.Category, error) {
			updateCalled = true
			return c, nil
		},
	}
	svc := newTestCategoryService(categories)

	_, err := svc.UpdateCategory(context.Background(), "uid-intruder", "cat-1", validCategoryInput())

	require.ErrorIs(t, err, store.ErrCategoryNotFound)
	assert.False(t, updateCalled, "storage must not be touched for a foreign category")
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	categories := &mockCategoryRepository{
		getFn: func(_ context.Context, _ string) (models.Category, error) {
			return models.Category{CategoryID: "cat-1", UserID: "uid-1", Name: "Old"}, nil
		},
	}
	svc := newTestCategoryService(categories)

	updated, err := svc.UpdateCategory(context.Background(), "uid-1", "cat-1", validCategoryInput())

	require.NoError(t, err)
	assert.Equal(t, "Banking", updated.Name)
}

func TestCategoryService_DeleteCategory_ForeignOwnerReportsNotFound(t *testing.T) {
	deleteCalled := false
	categories := &mockCategoryRepository{
		getFn: func(_ context.Context, _ string) (models.Category, error) {
			return models.Category{CategoryID: "cat-1", UserID: "uid-owner"}, nil
		},
		deleteFn: func(_ context.Context, _, _ string) error {
			deleteCalled = true
			return nil
		},
	}
	svc := newTestCategoryService(categories)

	err := svc.DeleteCategory(context.Background(), "uid-intruder", "cat-1")

	require.ErrorIs(t, err, store.ErrCategoryNotFound)
	assert.False(t, deleteCalled)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	categories := &mockCategoryRepository{
		getFn: func(_ context.Context, _ string) (models.Category, error) {
			return models.Category{CategoryID: "cat-1", UserID: "uid-1"}, nil
		},
	}
	svc := newTestCategoryService(categories)

	require.NoError(t, svc.DeleteCategory(context.Background(), "uid-1", "cat-1"))
}

func TestCategoryService_DeleteCategory_Missing(t *testing.T) {
	categories := &mockCategoryRepository{
		getFn: func(_ context.Context, _ string) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNotFound
		},
	}
	svc := newTestCategoryService(categories)

	err := svc.DeleteCategory(context.Background(), "uid-1", "missing")
	require.ErrorIs(t, err, store.ErrCategoryNotFound)
}
