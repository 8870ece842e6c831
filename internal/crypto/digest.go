// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// sha256Hasher is the default implementation of [Hasher]. It is a pure
// function over the passphrase bytes: no salt, no key, no state.
type sha256Hasher struct{}

// NewHasher constructs the SHA-256 [Hasher] used by the master gate.
func NewHasher() Hasher {
	return sha256Hasher{}
}

// Digest implements [Hasher]. The output is always 64 lowercase hex
// characters regardless of input length.
func (sha256Hasher) Digest(passphrase []byte) string {
	sum := sha256.Sum256(passphrase)
	return hex.EncodeToString(sum[:])
}
