package http

import (
	"errors"
	"net/http"

	"github.com/securevault/go-secure-vault/internal/service"
	"github.com/securevault/go-secure-vault/internal/store"
)

// errorStatusMap translates service and store sentinels into HTTP status
// codes. Ownership failures never appear here: the service layer already
// collapses them into the not-found sentinels, so a foreign record and a
// missing record produce the same 404.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:         http.StatusBadRequest,
	service.ErrValidationEmptyCategoryName: http.StatusBadRequest,
	service.ErrValidationUnknownIcon:       http.StatusBadRequest,
	service.ErrValidationInvalidColor:      http.StatusBadRequest,
	service.ErrValidationEmptyTitle:        http.StatusBadRequest,
	service.ErrValidationEmptyCategoryID:   http.StatusBadRequest,

	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrCategoryNameTaken:  http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCategoryNotFound:   http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
