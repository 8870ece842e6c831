package service

import "github.com/MKhiriev/go-pass-vault/models"

// AuthService is the master gate: it owns the persisted passphrase digest
// and decides whether a session may touch the vault at all. It never prints
// and never exits; reporting failures to the user and aborting the process
// are the shell's job.
type AuthService interface {
	// FirstRun reports whether no digest has been persisted yet, i.e. the
	// vault is in first-run setup and a new master passphrase must be
	// captured.
	FirstRun() bool

	// Setup computes the digest of passphrase, persists it (overwriting
	// any prior value), and makes it the session's active digest. The
	// unset→set transition normally happens exactly once per vault
	// lifetime. An empty passphrase is rejected.
	Setup(passphrase string) error

	// Verify reports whether passphrase matches the active digest, using
	// a constant-time comparison. Always false while no digest is set.
	Verify(passphrase string) bool

	// SessionKey returns the transform key derived from the verified
	// passphrase for the lifetime of the session: the raw passphrase
	// bytes in XOR mode, the Argon2id-derived key in AES-GCM mode.
	SessionKey(passphrase string) ([]byte, error)
}

// VaultService owns the in-memory record set for one session and its
// round-trip through the vault file. Load runs once at startup after the
// gate opens; SaveAll runs once at session end.
type VaultService interface {
	// SetSessionKey stores the transform key used by Load and SaveAll.
	// Must be called once after a successful unlock or setup.
	SetSessionKey(key []byte)

	// Load hydrates the record set from the vault file. An absent file
	// yields an empty vault. The number of skipped (unparseable) lines is
	// returned so the shell can make data loss visible.
	Load() (skipped int, err error)

	// Add validates and upserts one credential. Service must be non-empty;
	// service and username must not contain the field delimiter or a line
	// break, since the vault format has no escaping.
	Add(service, username, password string) error

	// Get returns the credential for service, reporting whether it exists.
	Get(service string) (models.Credential, bool)

	// Delete removes the credential for service and reports whether a
	// record was actually removed.
	Delete(service string) bool

	// List returns password-free summaries of all records.
	List() []models.ServiceSummary

	// Count reports the number of records currently held.
	Count() int

	// SaveAll flushes the record set to the vault file in full.
	SaveAll() error
}

// GeneratorService produces random passwords for the generate screen.
type GeneratorService interface {
	// Generate returns a random password of the requested length; a
	// non-positive length falls back to the configured default.
	Generate(length int) (string, error)

	// DefaultLength reports the configured fallback length.
	DefaultLength() int
}
