package service

import (
	"errors"

	"github.com/securevault/go-secure-vault/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is produced by the ownership guard when the requester does
	// not own the record. It never leaves the service layer: callers collapse
	// it into the matching not-found sentinel so that foreign identifiers are
	// indistinguishable from missing ones.
	ErrNotOwner = errors.New("record is not owned by requester")
)

// Validation sentinels re-exported from the validators package, so callers
// above the service layer match them without importing validators directly.
var (
	ErrValidationEmptyCategoryName = validators.ErrEmptyCategoryName
	ErrValidationUnknownIcon       = validators.ErrUnknownIcon
	ErrValidationInvalidColor      = validators.ErrInvalidColor
	ErrValidationEmptyTitle        = validators.ErrEmptyTitle
	ErrValidationEmptyCategoryID   = validators.ErrEmptyCategoryID
)
