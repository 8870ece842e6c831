// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Supported cipher modes for the at-rest password transform.
const (
	// CipherXOR is the default repeating-key XOR transform, hex encoded.
	CipherXOR = "xor"

	// CipherAESGCM is the opt-in AES-256-GCM transform with an
	// Argon2id-derived key. Selecting it changes the on-disk password
	// encoding; vault files are not interchangeable between modes.
	CipherAESGCM = "aes-gcm"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the cipher mode and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the file paths of all persisted artifacts.
	Storage Storage `envPrefix:"STORAGE_"`

	// Generator holds password-generation settings.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Auth holds master-gate settings.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Cipher selects the at-rest password transform: "xor" (default) or
	// "aes-gcm".
	// Env: APP_CIPHER
	Cipher string `env:"CIPHER"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persisted artifacts.
type Storage struct {
	// Files holds the on-disk locations of the vault and master artifacts.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the paths of the three text artifacts the vault uses.
type Files struct {
	// VaultPath is the credential vault file, one record per line.
	// Env: STORAGE_FILES_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`

	// DigestPath is the single-line master passphrase digest file.
	// Env: STORAGE_FILES_DIGEST_PATH
	DigestPath string `env:"DIGEST_PATH"`

	// SaltPath is the key-derivation salt file, used only in AES-GCM mode.
	// Env: STORAGE_FILES_SALT_PATH
	SaltPath string `env:"SALT_PATH"`
}

// Generator holds password-generation settings.
type Generator struct {
	// DefaultLength is the password length used when the user does not
	// supply one.
	// Env: GENERATOR_DEFAULT_LENGTH
	DefaultLength int `env:"DEFAULT_LENGTH"`
}

// Auth holds master-gate settings.
type Auth struct {
	// UnlockAttempts is the number of passphrase attempts allowed before
	// the session is aborted.
	// Env: AUTH_UNLOCK_ATTEMPTS
	UnlockAttempts int `env:"UNLOCK_ATTEMPTS"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
