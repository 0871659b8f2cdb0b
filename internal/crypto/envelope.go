package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/securevault/go-secure-vault/models"
)

const (
	// ivLength is the GCM nonce size in bytes. 16 rather than the Go
	// default of 12: the envelope format fixes the IV at 16 bytes and
	// stored ciphertext must keep round-tripping.
	ivLength = 16

	// tagLength is the GCM authentication tag size in bytes.
	tagLength = 16

	// envelopeParts is the number of colon-separated components in the
	// textual envelope: iv, tag, ciphertext.
	envelopeParts = 3
)

// Seal encrypts plaintext with AES-256-GCM under key and returns the
// textual envelope hex(iv):hex(tag):hex(ciphertext).
//
// A fresh 16-byte IV is read from the OS CSPRNG on every call, so sealing
// the same plaintext twice never produces the same envelope. Returns a
// wrapped [ErrCipherFailure] if cipher construction or the random read
// fails; such faults are unexpected and not retried.
func Seal(key Key, plaintext []byte) (models.Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrCipherFailure, err)
	}

	// Seal appends the tag to the ciphertext; the envelope format keeps
	// them as separate hex components.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	envelope := hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ciphertext)
	return models.Envelope(envelope), nil
}

// Open parses the three-part envelope, decrypts it with AES-256-GCM under
// key, and returns the exact original plaintext bytes.
//
// Failure modes, in checking order:
//   - [ErrMalformedEnvelope] — the string does not split into exactly three
//     colon-separated hex parts, or the IV is not 16 bytes;
//   - [ErrEnvelopeAuthentication] — the authentication tag does not verify
//     (tampered ciphertext or wrong key). Decryption fails closed: no
//     partially decrypted data is ever returned.
func Open(key Key, envelope models.Envelope) ([]byte, error) {
	parts := strings.Split(string(envelope), ":")
	if len(parts) != envelopeParts {
		return nil, ErrMalformedEnvelope
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad iv encoding", ErrMalformedEnvelope)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad tag encoding", ErrMalformedEnvelope)
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding", ErrMalformedEnvelope)
	}

	// GCM panics on a wrong-size nonce, so the length is checked here.
	if len(iv) != ivLength {
		return nil, fmt.Errorf("%w: iv must be %d bytes", ErrMalformedEnvelope, ivLength)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Reassemble ciphertext||tag as expected by GCM Open.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrEnvelopeAuthentication
	}

	return plaintext, nil
}

// newGCM builds the AES-256-GCM AEAD with the envelope's 16-byte nonce size.
func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCipherFailure, err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCipherFailure, err)
	}

	return gcm, nil
}
