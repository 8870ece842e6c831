package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCipherConfig indicates an unknown cipher mode (only "xor"
	// and "aes-gcm" are supported).
	ErrInvalidCipherConfig = errors.New("invalid cipher configuration")
	// ErrInvalidStorageConfigs indicates a missing artifact path (vault
	// file, digest file, or salt file).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGeneratorConfigs indicates a non-positive default password
	// length.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidAuthConfigs indicates a non-positive unlock attempt budget.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
