package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/securevault/go-secure-vault/internal/store"
	"github.com/securevault/go-secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveAuthed routes the request through the full router with a ParseToken
// stub resolving to userID, so middleware, routing and URL parameter
// extraction are all exercised.
func serveAuthed(t *testing.T, h *Handler, userID, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	auth, ok := h.services.AuthService.(*mockAuthService)
	require.True(t, ok, "test handler must use mockAuthService")
	auth.parseTokenFn = authedParseToken(userID)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer stub.jwt.token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

func categoryBody(t *testing.T, input models.CategoryInput) string {
	t.Helper()
	b, err := json.Marshal(input)
	require.NoError(t, err)
	return string(b)
}

func TestCreateCategory_Success(t *testing.T) {
	var gotRequester string
	categories := &mockCategoryService{
		createFn: func(_ context.Context, requesterID string, input models.CategoryInput) (models.Category, error) {
			gotRequester = requesterID
			return models.Category{CategoryID: "cat-1", UserID: requesterID, Name: input.Name, Icon: input.Icon, Color: input.Color}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)
	body := categoryBody(t, models.CategoryInput{Name: "Banking", Icon: "building-columns", Color: "#22c55e"})

	rec := serveAuthed(t, h, "uid-1", http.MethodPost, "/api/categories/", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "uid-1", gotRequester)

	var created models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "cat-1", created.CategoryID)
	assert.Equal(t, "Banking", created.Name)
}

func TestCreateCategory_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockCategoryService{}, nil)

	rec := serveAuthed(t, h, "uid-1", http.MethodPost, "/api/categories/", "{broken")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateCategory_NameTaken(t *testing.T) {
	categories := &mockCategoryService{
		createFn: func(_ context.Context, _ string, _ models.CategoryInput) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNameTaken
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)
	body := categoryBody(t, models.CategoryInput{Name: "Banking", Icon: "folder", Color: "#22c55e"})

	rec := serveAuthed(t, h, "uid-1", http.MethodPost, "/api/categories/", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListCategories_Success(t *testing.T) {
	categories := &mockCategoryService{
		listFn: func(_ context.Context, requesterID string) ([]models.Category, error) {
			return []models.Category{
				{CategoryID: "cat-1", UserID: requesterID, Name: "Banking"},
				{CategoryID: "cat-2", UserID: requesterID, Name: "Email"},
			}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)

	rec := serveAuthed(t, h, "uid-1", http.MethodGet, "/api/categories/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestUpdateCategory_Success(t *testing.T) {
	var gotCategoryID string
	categories := &mockCategoryService{
		updateFn: func(_ context.Context, requesterID, categoryID string, input models.CategoryInput) (models.Category, error) {
			gotCategoryID = categoryID
			return models.Category{CategoryID: categoryID, UserID: requesterID, Name: input.Name}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)
	body := categoryBody(t, models.CategoryInput{Name: "Renamed", Icon: "folder", Color: "#3b82f6"})

	rec := serveAuthed(t, h, "uid-1", http.MethodPut, "/api/categories/cat-42", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cat-42", gotCategoryID)
}

// TestUpdateCategory_ForeignResolvesNotFound verifies that the ownership
// outcome surfaces as 404, indistinguishable from a missing record.
func TestUpdateCategory_ForeignResolvesNotFound(t *testing.T) {
	categories := &mockCategoryService{
		updateFn: func(_ context.Context, _, _ string, _ models.CategoryInput) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNotFound
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)
	body := categoryBody(t, models.CategoryInput{Name: "Renamed", Icon: "folder", Color: "#3b82f6"})

	rec := serveAuthed(t, h, "uid-intruder", http.MethodPut, "/api/categories/cat-42", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCategory_Success(t *testing.T) {
	var gotCategoryID string
	categories := &mockCategoryService{
		deleteFn: func(_ context.Context, _, categoryID string) error {
			gotCategoryID = categoryID
			return nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)

	rec := serveAuthed(t, h, "uid-1", http.MethodDelete, "/api/categories/cat-42", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "cat-42", gotCategoryID)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteCategory_NotFound(t *testing.T) {
	categories := &mockCategoryService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return store.ErrCategoryNotFound
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)

	rec := serveAuthed(t, h, "uid-1", http.MethodDelete, "/api/categories/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories_UnexpectedErrorHidesDetails(t *testing.T) {
	categories := &mockCategoryService{
		listFn: func(_ context.Context, _ string) ([]models.Category, error) {
			return nil, errors.New("pq: connection reset by peer")
		},
	}

	h := newTestHandler(t, &mockAuthService{}, categories, nil)

	rec := serveAuthed(t, h, "uid-1", http.MethodGet, "/api/categories/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
