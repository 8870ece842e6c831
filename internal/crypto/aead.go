// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// gcmCodec is the opt-in authenticated [Codec]. It encrypts each password
// with AES-256-GCM under a key derived from the master passphrase (see
// [KeyChain]); a random 12-byte nonce is prepended to the ciphertext so the
// decrypt side can locate it: blob = nonce ‖ ciphertext. The blob is stored
// as standard base64.
//
// Selecting this codec changes the on-disk password encoding; vault files
// written in XOR mode cannot be read back in AES-GCM mode and vice versa.
type gcmCodec struct{}

// NewGCMCodec constructs the AES-256-GCM [Codec]. Keys must be 32 bytes.
func NewGCMCodec() Codec {
	return gcmCodec{}
}

// Encode implements [Codec].
func (gcmCodec) Encode(plain, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decode can split it out again.
	blob := gcm.Seal(nonce, nonce, plain, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decode implements [Codec]. An authentication failure almost always means
// the wrong master passphrase produced the wrong key; it is reported as
// [ErrMalformedCiphertext] like any other undecodable input.
func (gcmCodec) Decode(encoded string, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("%w: blob shorter than nonce", ErrMalformedCiphertext)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
