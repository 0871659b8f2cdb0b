package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/securevault/go-secure-vault/internal/logger"
	"github.com/securevault/go-secure-vault/internal/utils"
	"github.com/securevault/go-secure-vault/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var input models.CredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.CreateCredential(r.Context(), userID, input)
	if err != nil {
		writeMappedError(w, r, err, "error creating credential")
		return
	}

	utils.WriteJSON(w, credential, http.StatusCreated)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	credential, err := h.services.CredentialService.GetCredential(r.Context(), userID, chi.URLParam(r, "credentialID"))
	if err != nil {
		writeMappedError(w, r, err, "error reading credential")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

// listCredentials returns the whole vault of the requester, or one category
// of it when the "category_id" query parameter is present.
func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var categoryFilter *string
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		categoryFilter = &categoryID
	}

	credentials, err := h.services.CredentialService.ListCredentials(r.Context(), userID, categoryFilter)
	if err != nil {
		writeMappedError(w, r, err, "error listing credentials")
		return
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	var update models.CredentialUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.UpdateCredential(r.Context(), userID, chi.URLParam(r, "credentialID"), update)
	if err != nil {
		writeMappedError(w, r, err, "error updating credential")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(w, r)
	if !ok {
		return
	}

	if err := h.services.CredentialService.DeleteCredential(r.Context(), userID, chi.URLParam(r, "credentialID")); err != nil {
		writeMappedError(w, r, err, "error deleting credential")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
