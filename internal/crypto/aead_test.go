package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGCMCodec_RoundTrip(t *testing.T) {
	codec := NewGCMCodec()
	key := bytes.Repeat([]byte{0x2A}, 32)

	encoded, err := codec.Encode([]byte("Secr3t!"), key)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	decoded, err := codec.Decode(encoded, key)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(decoded, []byte("Secr3t!")) {
		t.Fatalf("round trip mismatch: got %q", decoded)
	}
}

func TestGCMCodec_NonceRandomness(t *testing.T) {
	codec := NewGCMCodec()
	key := bytes.Repeat([]byte{0x2A}, 32)

	e1, err := codec.Encode([]byte("same plaintext"), key)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	e2, err := codec.Encode([]byte("same plaintext"), key)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if e1 == e2 {
		t.Fatalf("expected different blobs for two encryptions of the same input")
	}
}

func TestGCMCodec_WrongKeyFails(t *testing.T) {
	codec := NewGCMCodec()

	encoded, err := codec.Encode([]byte("Secr3t!"), bytes.Repeat([]byte{0x11}, 32))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = codec.Decode(encoded, bytes.Repeat([]byte{0x22}, 32))
	if !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("Decode with wrong key: got %v, want ErrMalformedCiphertext", err)
	}
}

func TestGCMCodec_KeySizeChecked(t *testing.T) {
	codec := NewGCMCodec()

	if _, err := codec.Encode([]byte("x"), nil); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("empty key: got %v, want ErrEmptyKey", err)
	}
	if _, err := codec.Encode([]byte("x"), []byte("short")); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("short key: got %v, want ErrInvalidKeySize", err)
	}
}

func TestGCMCodec_TruncatedBlob(t *testing.T) {
	codec := NewGCMCodec()
	key := bytes.Repeat([]byte{0x2A}, 32)

	for _, encoded := range []string{"", "AAAA", "not base64 at all!!!"} {
		if _, err := codec.Decode(encoded, key); !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("Decode(%q): got %v, want ErrMalformedCiphertext", encoded, err)
		}
	}
}
