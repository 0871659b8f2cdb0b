package crypto

import "github.com/securevault/go-secure-vault/models"

// EnvelopeCodec serializes structured secret fields and seals them into
// envelopes. It knows nothing about users, ownership, or persistence; the
// service layer is responsible for authorizing access before any call
// reaches this interface.
type EnvelopeCodec interface {
	// Encode serializes fields to their canonical byte encoding and seals
	// the result into an envelope. Absent fields are omitted from the
	// serialized form and custom-field order is preserved.
	Encode(fields models.SecretFields) (models.Envelope, error)

	// Decode opens the envelope and parses the plaintext back into
	// SecretFields. Returns ErrMalformedEnvelope / ErrEnvelopeAuthentication
	// from the open step, or ErrSecretFieldsDecode when the plaintext is
	// valid ciphertext-wise but does not parse.
	Decode(envelope models.Envelope) (models.SecretFields, error)
}
