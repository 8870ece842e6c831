package tui

import "errors"

var (
	// ErrUserQuit is returned when the user abandons the session from the
	// unlock screen without authenticating.
	ErrUserQuit = errors.New("user quit")

	// ErrAuthFailed is returned when the unlock attempt budget is spent
	// without a matching master passphrase. The session must not touch
	// the vault after this.
	ErrAuthFailed = errors.New("master passphrase verification failed")
)
