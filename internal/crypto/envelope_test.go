package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/securevault/go-secure-vault/models"
)

func testKey(t *testing.T, secret string) Key {
	t.Helper()
	key, err := DeriveKey(secret)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	return key
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")
	plaintext := []byte(`{"loginPassword":"Secure@123"}`)

	envelope, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	parts := strings.Split(string(envelope), ":")
	if len(parts) != 3 {
		t.Fatalf("envelope has %d parts, want 3", len(parts))
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("iv is not valid hex: %v", err)
	}
	if len(iv) != 16 {
		t.Fatalf("iv length = %d, want 16", len(iv))
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("tag is not valid hex: %v", err)
	}
	if len(tag) != 16 {
		t.Fatalf("tag length = %d, want 16", len(tag))
	}

	opened, err := Open(key, envelope)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("Open returned %q, want %q", opened, plaintext)
	}
}

func TestSeal_FreshIVPerCall(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")
	plaintext := []byte("same plaintext twice")

	e1, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	e2, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if e1 == e2 {
		t.Fatalf("expected distinct envelopes for repeated Seal calls")
	}

	iv1 := strings.Split(string(e1), ":")[0]
	iv2 := strings.Split(string(e2), ":")[0]
	if iv1 == iv2 {
		t.Fatalf("expected distinct IVs for repeated Seal calls")
	}

	for _, envelope := range []models.Envelope{e1, e2} {
		opened, err := Open(key, envelope)
		if err != nil {
			t.Fatalf("Open error: %v", err)
		}
		if !bytes.Equal(opened, plaintext) {
			t.Fatalf("Open returned %q, want %q", opened, plaintext)
		}
	}
}

func TestOpen_RejectsWrongPartCount(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	cases := []string{
		"",
		"deadbeef",
		"deadbeef:cafebabe",
		"aa:bb:cc:dd",
		"not an envelope at all",
	}

	for _, raw := range cases {
		if _, err := Open(key, models.Envelope(raw)); !errors.Is(err, ErrMalformedEnvelope) {
			t.Fatalf("Open(%q): expected ErrMalformedEnvelope, got %v", raw, err)
		}
	}
}

func TestOpen_RejectsBadHex(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	if _, err := Open(key, "zz:bb:cc"); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected ErrMalformedEnvelope for non-hex iv, got %v", err)
	}
}

func TestOpen_RejectsShortIV(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	envelope, err := Seal(key, []byte("payload"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	parts := strings.Split(string(envelope), ":")
	truncated := models.Envelope(parts[0][:8] + ":" + parts[1] + ":" + parts[2])

	if _, err := Open(key, truncated); !errors.Is(err, ErrMalformedEnvelope) {
		t.Fatalf("expected ErrMalformedEnvelope for short iv, got %v", err)
	}
}

// flipBit flips one bit inside the hex-decoded form of a single envelope
// component and re-encodes it.
func flipBit(t *testing.T, component string, bit int) string {
	t.Helper()
	raw, err := hex.DecodeString(component)
	if err != nil {
		t.Fatalf("component is not valid hex: %v", err)
	}
	raw[bit/8] ^= 1 << (bit % 8)
	return hex.EncodeToString(raw)
}

func TestOpen_DetectsTamperedCiphertext(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	envelope, err := Seal(key, []byte(`{"pin":"9876"}`))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	parts := strings.Split(string(envelope), ":")

	for bit := 0; bit < 16; bit++ {
		tampered := models.Envelope(parts[0] + ":" + parts[1] + ":" + flipBit(t, parts[2], bit))

		if _, err := Open(key, tampered); !errors.Is(err, ErrEnvelopeAuthentication) {
			t.Fatalf("bit %d: expected ErrEnvelopeAuthentication, got %v", bit, err)
		}
	}
}

func TestOpen_DetectsTamperedTag(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	envelope, err := Seal(key, []byte(`{"pin":"9876"}`))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	parts := strings.Split(string(envelope), ":")

	for bit := 0; bit < 16; bit++ {
		tampered := models.Envelope(parts[0] + ":" + flipBit(t, parts[1], bit) + ":" + parts[2])

		if _, err := Open(key, tampered); !errors.Is(err, ErrEnvelopeAuthentication) {
			t.Fatalf("bit %d: expected ErrEnvelopeAuthentication, got %v", bit, err)
		}
	}
}

func TestOpen_WrongKeyFailsAuthentication(t *testing.T) {
	sealKey := testKey(t, "S3cur3VaultKey2024Protect1234")
	openKey := testKey(t, "a-completely-different-secret")

	envelope, err := Seal(sealKey, []byte(`{"loginPassword":"Secure@123"}`))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := Open(openKey, envelope); !errors.Is(err, ErrEnvelopeAuthentication) {
		t.Fatalf("expected ErrEnvelopeAuthentication for wrong key, got %v", err)
	}
}

func TestSealOpen_EmptyPlaintext(t *testing.T) {
	key := testKey(t, "S3cur3VaultKey2024Protect1234")

	envelope, err := Seal(key, []byte{})
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	opened, err := Open(key, envelope)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if len(opened) != 0 {
		t.Fatalf("expected empty plaintext, got %q", opened)
	}
}
