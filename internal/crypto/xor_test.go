package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestXORCodec_RoundTrip(t *testing.T) {
	codec := NewXORCodec()

	tests := []struct {
		name  string
		plain []byte
		key   []byte
	}{
		{"short password short key", []byte("Secr3t!"), []byte("masterpw")},
		{"plaintext longer than key", []byte("a much longer secret than the key"), []byte("k")},
		{"key longer than plaintext", []byte("pw"), []byte("very-long-master-passphrase")},
		{"empty plaintext", []byte{}, []byte("key")},
		{"binary plaintext", []byte{0x00, 0xFF, 0x10, 0x7F}, []byte{0xAA, 0x55}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := codec.Encode(tt.plain, tt.key)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if len(encoded) != 2*len(tt.plain) {
				t.Fatalf("encoded length = %d, want %d", len(encoded), 2*len(tt.plain))
			}

			decoded, err := codec.Decode(encoded, tt.key)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if !bytes.Equal(decoded, tt.plain) {
				t.Fatalf("round trip mismatch: got %q, want %q", decoded, tt.plain)
			}
		})
	}
}

func TestXORCodec_EmptyKey(t *testing.T) {
	codec := NewXORCodec()

	if _, err := codec.Encode([]byte("data"), nil); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("Encode with empty key: got %v, want ErrEmptyKey", err)
	}
	if _, err := codec.Decode("6162", nil); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("Decode with empty key: got %v, want ErrEmptyKey", err)
	}
}

func TestXORCodec_MalformedCiphertext(t *testing.T) {
	codec := NewXORCodec()

	for _, encoded := range []string{"abc", "zz", "61g2"} {
		_, err := codec.Decode(encoded, []byte("key"))
		if !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("Decode(%q): got %v, want ErrMalformedCiphertext", encoded, err)
		}
	}
}

func TestXORCodec_WrongKeyScramblesOutput(t *testing.T) {
	codec := NewXORCodec()

	encoded, err := codec.Encode([]byte("Secr3t!"), []byte("right-key"))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	decoded, err := codec.Decode(encoded, []byte("wrong-key"))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	// XOR has no integrity check: a wrong key silently yields garbage.
	if bytes.Equal(decoded, []byte("Secr3t!")) {
		t.Fatalf("expected wrong key to produce different plaintext")
	}
}
