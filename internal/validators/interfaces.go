// Package validators provides input validation for the vault's client-facing
// structures, decoupled from transport and storage.
//
// Services inject a [Validator] and pass client input through it before any
// repository or codec call. Validation errors are sentinel values so that
// upper layers can map them to response codes with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks and
// cross-field rules.
type Validator interface {
	// Validate validates the provided input value.
	Validate(context.Context, any) error
}
