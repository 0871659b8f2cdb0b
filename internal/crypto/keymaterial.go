package crypto

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// minSecretLength is the minimum accepted length of the configured
// encryption secret. Shorter values are a startup-time configuration error.
const minSecretLength = 16

// Key is the fixed-length symmetric key all envelopes are sealed under.
// Derived once per process from configuration and immutable afterwards.
type Key [KeySize]byte

// DeriveKey derives the process-wide encryption key from the configured
// secret string. The UTF-8 bytes of the secret are copied into a
// zero-initialized 32-byte buffer: truncated if longer, zero-padded if
// shorter. Deterministic; the same secret always yields the same key, so
// envelopes remain openable across restarts and deployments.
//
// Returns [ErrWeakEncryptionSecret] if the secret is shorter than 16
// characters.
//
// Note: this is a raw byte copy, not a KDF. The scheme is intentionally
// preserved so that envelopes written by earlier deployments of the vault
// keep opening; switching to a salted KDF would orphan every stored record.
func DeriveKey(secret string) (Key, error) {
	var key Key
	if len(secret) < minSecretLength {
		return key, ErrWeakEncryptionSecret
	}

	copy(key[:], secret)
	return key, nil
}
