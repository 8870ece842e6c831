package store

import "github.com/MKhiriev/go-pass-vault/models"

// Records is the in-memory credential table for one session. It is created
// empty at process start, optionally hydrated once by [VaultFile.Load],
// mutated by the session, and flushed back exactly once at session end.
// Implementations are not safe for concurrent use; the application is
// single-session by design.
type Records interface {
	// Upsert inserts or overwrites the record keyed by service.
	// Last write wins; the prior record, if any, is discarded.
	Upsert(service, username, password string)

	// Get returns the record for service, reporting whether it exists.
	Get(service string) (models.Credential, bool)

	// Delete removes the record for service and reports whether a record
	// was actually removed.
	Delete(service string) bool

	// List returns password-free summaries of every record.
	// Iteration order is not meaningful.
	List() []models.ServiceSummary

	// Len reports the number of records currently held.
	Len() int
}

// VaultFile persists a [Records] set as a line-oriented text artifact:
// one record per line, `service|username|encodedPassword`. The password
// field is run through the session codec; service and username are written
// verbatim, which is why the service layer rejects delimiter characters at
// insert time.
type VaultFile interface {
	// Save rewrites the destination in full from the given records.
	// Write failures are surfaced, never swallowed.
	Save(records Records, key []byte) error

	// Load reads the destination line by line into a fresh record set.
	// An absent or unreadable file is the "no existing vault" signal and
	// yields an empty set with a nil error. Lines that do not split into
	// exactly three fields, or whose password fails decoding, are skipped
	// and counted so the caller can report the loss.
	Load(key []byte) (records Records, skipped int, err error)
}

// MasterFile persists the master-passphrase digest (and, for the AES-GCM
// codec mode, the key-derivation salt) separately from the vault file.
type MasterFile interface {
	// LoadDigest reads the single-line digest artifact. An absent file is
	// the first-run signal: ("", false, nil), not an error.
	LoadDigest() (digest string, found bool, err error)

	// SaveDigest overwrites the digest artifact with owner-only
	// permissions.
	SaveDigest(digest string) error

	// LoadOrCreateSalt returns the persisted key-derivation salt, creating
	// and persisting a fresh one on first use. Only the AES-GCM codec mode
	// reads it.
	LoadOrCreateSalt() ([]byte, error)
}
