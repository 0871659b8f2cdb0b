package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyEmail    = errors.New("email must not be empty")
	ErrEmptyPassword = errors.New("password must not be empty")

	ErrEmptyCategoryName = errors.New("category name must not be empty")
	ErrUnknownIcon       = errors.New("unknown category icon")
	ErrInvalidColor      = errors.New("category color must be a #RRGGBB hex value")

	ErrEmptyTitle      = errors.New("credential title must not be empty")
	ErrEmptyCategoryID = errors.New("credential category must be set")
)
