package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/utils"
	"github.com/securevault/go-secure-vault/models"
)

// requesterID pulls the authenticated user's ID out of the request context.
// A missing ID behind the auth middleware means the middleware chain is
// broken; the request is rejected rather than served with someone's guess.
func requesterID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// writeMappedError logs err and answers with the status resolved through
// [statusFromError]. Internal failures answer with a generic message so
// that driver or cipher details never reach the client.
func writeMappedError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), userID, input)
	if err != nil {
		writeMappedError(w, r, err, "error creating category")
		return
	}

	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	categories, err := h.services.CategoryService.ListCategories(r.Context(), userID)
	if err != nil {
		writeMappedError(w, r, err, "error listing categories")
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), userID, chi.URLParam(r, "categoryID"), input)
	if err != nil {
		writeMappedError(w, r, err, "error updating category")
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), userID, chi.URLParam(r, "categoryID")); err != nil {
		writeMappedError(w, r, err, "error deleting category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
