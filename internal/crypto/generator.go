// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet is the fixed character set passwords are drawn from:
// uppercase, lowercase, digits, and a small symbol set.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// passwordGenerator is the default implementation of [Generator]. Indices
// into the alphabet come from the OS CSPRNG via crypto/rand.Int, which
// avoids modulo bias.
type passwordGenerator struct {
	alphabet string
}

// NewGenerator constructs the password [Generator] over the fixed alphabet.
func NewGenerator() Generator {
	return &passwordGenerator{alphabet: passwordAlphabet}
}

// Generate implements [Generator]. Returns [ErrInvalidLength] for a
// non-positive length.
func (g *passwordGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(g.alphabet)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = g.alphabet[idx.Int64()]
	}

	return string(out), nil
}
