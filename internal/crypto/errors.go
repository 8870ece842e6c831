package crypto

import "errors"

// Sentinel errors returned by codec and generator implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when a codec operation is attempted with a
	// zero-length key. An empty key would make the keystream derivation
	// undefined, so the codec fails fast instead of panicking.
	ErrEmptyKey = errors.New("transform key is empty")

	// ErrMalformedCiphertext is returned when Decode receives input that
	// Encode could not have produced (odd-length hex, non-hex characters,
	// truncated AEAD blob). The whole decode fails rather than silently
	// dropping unparseable groups, so corruption stays visible.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidKeySize is returned by the AES-GCM codec when the key is
	// not the 32 bytes required for AES-256.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidLength is returned by the password generator for a
	// non-positive requested length.
	ErrInvalidLength = errors.New("password length must be positive")
)
