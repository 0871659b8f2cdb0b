package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values; the HTTP layer maps them to
// client-safe responses without exposing cipher internals.
var (
	// ErrWeakEncryptionSecret is returned by [DeriveKey] when the configured
	// encryption secret is missing or shorter than the required minimum.
	// Surfacing it is always a startup-time fatal condition.
	ErrWeakEncryptionSecret = errors.New("encryption secret must be at least 16 characters")

	// ErrMalformedEnvelope is returned by [Open] when stored ciphertext does
	// not match the expected three-part hex format iv:tag:ciphertext.
	ErrMalformedEnvelope = errors.New("invalid encrypted data format")

	// ErrEnvelopeAuthentication is returned by [Open] when the GCM
	// authentication tag does not verify: the ciphertext was tampered with
	// or was sealed under a different key. No plaintext is ever returned
	// alongside this error.
	ErrEnvelopeAuthentication = errors.New("envelope authentication failed")

	// ErrCipherFailure is returned on any unexpected fault in the underlying
	// cipher machinery (bad key size, nonce generation failure). Treated as
	// fatal by callers; never retried.
	ErrCipherFailure = errors.New("cipher operation failed")

	// ErrSecretFieldsDecode is returned by [EnvelopeCodec.Decode] when an
	// envelope opens successfully but the plaintext does not parse as
	// SecretFields. This indicates a data-integrity bug, not tampering, and
	// is kept distinct from ErrEnvelopeAuthentication so list reads can
	// degrade gracefully.
	ErrSecretFieldsDecode = errors.New("decrypted payload is not valid secret fields")
)
