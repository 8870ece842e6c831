package service

import "errors"

// Sentinel errors returned by service methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyPassphrase is returned by Setup when the supplied master
	// passphrase is empty. An empty passphrase would double as an empty
	// transform key, which the codec rejects.
	ErrEmptyPassphrase = errors.New("master passphrase is empty")

	// ErrEmptyService is returned by Add when the service name is empty.
	// The service name is the record key; an empty key is meaningless.
	ErrEmptyService = errors.New("service name is empty")

	// ErrReservedCharacter is returned by Add when service or username
	// contains the vault field delimiter or a line break. The line format
	// has no escaping, so such values would corrupt parsing on reload;
	// they are rejected at insert time instead.
	ErrReservedCharacter = errors.New("service or username contains a reserved character")
)
