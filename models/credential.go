package models

import "time"

// Credential represents a single vault item. All confidential payload lives
// in EncryptedData; the database stores that field as an opaque string and
// the decrypted SensitiveData is populated only for responses, after the
// ownership check has passed.
type Credential struct {
	// CredentialID is the unique identifier of the record (UUID).
	CredentialID string `json:"credential_id"`

	// UserID is the owner of this credential. Always taken from the
	// authenticated request context, never from client input.
	UserID string `json:"user_id"`

	// CategoryID references the category this credential belongs to.
	// The category must belong to the same owner.
	CategoryID string `json:"category_id"`

	// Title is the required display name of the item.
	Title string `json:"title"`

	// Description is an optional free-form summary.
	Description *string `json:"description,omitempty"`

	// Website is the optional URL the credential applies to.
	Website *string `json:"website,omitempty"`

	// Username is the optional non-secret sign-in identifier.
	Username *string `json:"username,omitempty"`

	// CustomerID is an optional account/customer reference number.
	CustomerID *string `json:"customer_id,omitempty"`

	// Notes contains optional user notes.
	Notes *string `json:"notes,omitempty"`

	// EncryptedData holds the sealed SecretFields envelope.
	// Never serialized to clients.
	EncryptedData Envelope `json:"-"`

	// SensitiveData is the decrypted payload. Populated on reads after
	// decryption; empty when decryption was skipped or degraded.
	SensitiveData SecretFields `json:"sensitive_data"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c *Credential) TableName() string {
	return "credentials"
}

// CredentialInput carries the client-supplied fields for creating or
// replacing a credential. The owner is never part of the input.
type CredentialInput struct {
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	Website       *string      `json:"website,omitempty"`
	Username      *string      `json:"username,omitempty"`
	CustomerID    *string      `json:"customer_id,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
	CategoryID    string       `json:"category_id"`
	SensitiveData SecretFields `json:"sensitive_data"`
}

// CredentialUpdate carries a partial update of a credential. A nil field
// means "leave unchanged". SensitiveData, when present, is merged with the
// stored payload field by field before the record is re-sealed.
type CredentialUpdate struct {
	Title         *string       `json:"title,omitempty"`
	Description   *string       `json:"description,omitempty"`
	Website       *string       `json:"website,omitempty"`
	Username      *string       `json:"username,omitempty"`
	CustomerID    *string       `json:"customer_id,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	CategoryID    *string       `json:"category_id,omitempty"`
	SensitiveData *SecretFields `json:"sensitive_data,omitempty"`
}
