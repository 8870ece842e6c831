// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Services aggregates every service the TUI depends on, so the shell takes
// a single dependency instead of three.
type Services struct {
	Auth      AuthService
	Vault     VaultService
	Generator GeneratorService
}

// NewServices wires the service layer on top of the given persistence and
// crypto primitives.
func NewServices(
	master store.MasterFile,
	vault store.VaultFile,
	hasher crypto.Hasher,
	keychain crypto.KeyChain,
	generator crypto.Generator,
	cfg *config.StructuredConfig,
	log *logger.Logger,
) (*Services, error) {
	log.Debug().Str("cipher", cfg.App.Cipher).Msg("creating services")

	auth, err := NewAuthService(master, hasher, keychain, cfg.App.Cipher, log)
	if err != nil {
		return nil, fmt.Errorf("create auth service: %w", err)
	}

	return &Services{
		Auth:      auth,
		Vault:     NewVaultService(vault, log),
		Generator: NewGeneratorService(generator, cfg.Generator.DefaultLength, log),
	}, nil
}
