// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel
// error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Cipher != CipherXOR && cfg.App.Cipher != CipherAESGCM {
		return ErrInvalidCipherConfig
	}

	files := cfg.Storage.Files
	if files.VaultPath == "" || files.DigestPath == "" || files.SaltPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Generator.DefaultLength < 1 {
		return ErrInvalidGeneratorConfigs
	}

	if cfg.Auth.UnlockAttempts < 1 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
