// Package crypto implements the encrypted-field subsystem of the vault:
// key derivation from the configured secret, the AES-256-GCM envelope
// cipher, and the codec that seals structured secret fields into textual
// envelopes. All operations are pure CPU work with no I/O; the key is
// injected explicitly so tests can supply distinct keys without touching
// process-wide state.
package crypto

import (
	"encoding/json"
	"fmt"

	"github.com/securevault/go-secure-vault/models"
)

// envelopeCodec is the private implementation of [EnvelopeCodec].
// It holds the process-wide key derived at startup; the struct is
// read-only after construction and safe for concurrent use.
type envelopeCodec struct {
	key Key
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] sealing under key.
func NewEnvelopeCodec(key Key) EnvelopeCodec {
	return &envelopeCodec{key: key}
}

// Encode implements [EnvelopeCodec]. JSON is the canonical byte encoding:
// struct field order is fixed, omitempty drops absent fields, and the
// custom-fields slice keeps insertion order including duplicate keys.
func (c *envelopeCodec) Encode(fields models.SecretFields) (models.Envelope, error) {
	plaintext, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: marshal secret fields: %w", ErrCipherFailure, err)
	}

	return Seal(c.key, plaintext)
}

// Decode implements [EnvelopeCodec]. Open-step failures pass through
// unchanged; a plaintext that does not parse as SecretFields yields
// [ErrSecretFieldsDecode] so callers can tell a logic bug apart from
// tampering.
func (c *envelopeCodec) Decode(envelope models.Envelope) (models.SecretFields, error) {
	plaintext, err := Open(c.key, envelope)
	if err != nil {
		return models.SecretFields{}, err
	}

	var fields models.SecretFields
	if err := json.Unmarshal(plaintext, &fields); err != nil {
		return models.SecretFields{}, fmt.Errorf("%w: %w", ErrSecretFieldsDecode, err)
	}

	return fields, nil
}
