package store

import "errors"

// Sentinel errors returned by the persistence layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrWritingVaultFile is returned (wrapped) when rewriting the vault
	// artifact fails. Save failures are always surfaced: a silently lost
	// flush would drop every unsaved mutation of the session.
	ErrWritingVaultFile = errors.New("error writing vault file")

	// ErrReadingVaultFile is returned (wrapped) when the vault artifact
	// exists but cannot be scanned. Note that a missing file is NOT an
	// error — it is the empty-vault signal.
	ErrReadingVaultFile = errors.New("error reading vault file")

	// ErrWritingMasterFile is returned (wrapped) when persisting the
	// master digest or the key-derivation salt fails.
	ErrWritingMasterFile = errors.New("error writing master file")

	// ErrReadingMasterFile is returned (wrapped) when the master artifact
	// exists but cannot be read or holds no digest line.
	ErrReadingMasterFile = errors.New("error reading master file")
)
