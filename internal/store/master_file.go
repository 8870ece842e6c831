// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// masterFile is the default implementation of [MasterFile]. The digest
// artifact holds a single line with the hex digest of the master
// passphrase; the salt artifact holds a single line of hex salt bytes.
// Both live outside the vault file so the gate can be checked before any
// vault content is touched.
type masterFile struct {
	digestPath string
	saltPath   string
	keychain   crypto.KeyChain
	logger     *logger.Logger
}

// NewMasterFile constructs a [MasterFile] over the two artifact paths.
func NewMasterFile(digestPath, saltPath string, keychain crypto.KeyChain, log *logger.Logger) MasterFile {
	return &masterFile{
		digestPath: digestPath,
		saltPath:   saltPath,
		keychain:   keychain,
		logger:     log,
	}
}

// LoadDigest implements [MasterFile].
func (m *masterFile) LoadDigest() (string, bool, error) {
	file, err := os.Open(m.digestPath)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug().Str("path", m.digestPath).Msg("no master digest, first run")
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrReadingMasterFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrReadingMasterFile, err)
		}
		// An existing but empty file is treated like an absent one.
		return "", false, nil
	}

	digest := strings.TrimSpace(scanner.Text())
	if digest == "" {
		return "", false, nil
	}

	return digest, true, nil
}

// SaveDigest implements [MasterFile]. Any prior value is overwritten; the
// unset→set transition normally happens exactly once per vault lifetime.
func (m *masterFile) SaveDigest(digest string) error {
	if err := os.WriteFile(m.digestPath, []byte(digest+"\n"), 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingMasterFile, err)
	}

	m.logger.Debug().Str("path", m.digestPath).Msg("master digest saved")
	return nil
}

// LoadOrCreateSalt implements [MasterFile].
func (m *masterFile) LoadOrCreateSalt() ([]byte, error) {
	raw, err := os.ReadFile(m.saltPath)
	if err == nil {
		salt, decodeErr := hex.DecodeString(strings.TrimSpace(string(raw)))
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingMasterFile, decodeErr)
		}
		return salt, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", ErrReadingMasterFile, err)
	}

	salt, err := m.keychain.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	if err := os.WriteFile(m.saltPath, []byte(hex.EncodeToString(salt)+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritingMasterFile, err)
	}

	m.logger.Debug().Str("path", m.saltPath).Msg("key derivation salt created")
	return salt, nil
}
