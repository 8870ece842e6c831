// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// authService is the default implementation of [AuthService]. The digest
// is loaded once at construction; there is no passphrase-change operation,
// so it only transitions unset→set via Setup.
type authService struct {
	master   store.MasterFile
	hasher   crypto.Hasher
	keychain crypto.KeyChain
	cipher   string
	logger   *logger.Logger

	digest string
	found  bool
}

// NewAuthService constructs an [AuthService], loading any persisted digest
// from master. An absent digest is the first-run signal, not an error.
func NewAuthService(
	master store.MasterFile,
	hasher crypto.Hasher,
	keychain crypto.KeyChain,
	cipher string,
	log *logger.Logger,
) (AuthService, error) {
	digest, found, err := master.LoadDigest()
	if err != nil {
		return nil, fmt.Errorf("load master digest: %w", err)
	}

	log.Debug().Bool("first_run", !found).Msg("master gate initialized")

	return &authService{
		master:   master,
		hasher:   hasher,
		keychain: keychain,
		cipher:   cipher,
		logger:   log,
		digest:   digest,
		found:    found,
	}, nil
}

// FirstRun implements [AuthService].
func (a *authService) FirstRun() bool {
	return !a.found
}

// Setup implements [AuthService].
func (a *authService) Setup(passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	digest := a.hasher.Digest([]byte(passphrase))
	if err := a.master.SaveDigest(digest); err != nil {
		return fmt.Errorf("persist master digest: %w", err)
	}

	a.digest = digest
	a.found = true

	a.logger.Info().Msg("master passphrase set up")
	return nil
}

// Verify implements [AuthService]. The comparison is constant-time.
func (a *authService) Verify(passphrase string) bool {
	if !a.found {
		return false
	}

	supplied := a.hasher.Digest([]byte(passphrase))
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(a.digest)) == 1
}

// SessionKey implements [AuthService].
func (a *authService) SessionKey(passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	if a.cipher == config.CipherAESGCM {
		salt, err := a.master.LoadOrCreateSalt()
		if err != nil {
			return nil, fmt.Errorf("load key derivation salt: %w", err)
		}
		return a.keychain.DeriveKey(passphrase, salt), nil
	}

	return []byte(passphrase), nil
}
