// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
)

// xorCodec is the default [Codec]: each plaintext byte at position i is
// XOR-ed with key[i mod len(key)] and emitted as a two-hex-digit group.
// Applying the transform twice with the same key returns the input, so
// Encode and Decode are the same byte-wise operation.
//
// This is an obfuscation primitive, NOT a cipher: the repeating keystream
// leaks plaintext structure and there is no integrity check. It exists to
// keep passwords out of casual view in the vault file. Deployments that
// need real at-rest protection should select the AES-GCM codec instead.
type xorCodec struct{}

// NewXORCodec constructs the repeating-key XOR [Codec].
func NewXORCodec() Codec {
	return xorCodec{}
}

// Encode implements [Codec]. Output length is always 2*len(plain) hex
// characters, order preserving.
func (xorCodec) Encode(plain, key []byte) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}

	out := make([]byte, len(plain))
	for i, b := range plain {
		out[i] = b ^ key[i%len(key)]
	}

	return hex.EncodeToString(out), nil
}

// Decode implements [Codec]. Unlike the lenient parser this design grew out
// of, malformed input (odd length, non-hex characters) fails the whole
// decode with [ErrMalformedCiphertext] instead of dropping the bad groups:
// a partially recovered password is worse than a visible error.
func (xorCodec) Decode(encoded string, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	for i := range raw {
		raw[i] ^= key[i%len(key)]
	}

	return raw, nil
}
