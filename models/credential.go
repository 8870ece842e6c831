// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is a single vault entry: one service/username/password triple.
// Service is the unique key within the vault. Password is held in plaintext
// in memory only; at rest it is always run through the session codec.
type Credential struct {
	// Service is the unique, non-empty name the entry is keyed by
	// (e.g. "github").
	Service string

	// Username is the account identifier for the service.
	Username string

	// Password is the secret value. It must never appear in listing
	// output or in logs.
	Password string
}

// Summary strips the password and returns the listing row for the entry.
func (c Credential) Summary() ServiceSummary {
	return ServiceSummary{
		Service:  c.Service,
		Username: c.Username,
	}
}

// ServiceSummary is the password-free projection of a [Credential] used for
// vault enumeration. Only service and username are ever exposed when listing.
type ServiceSummary struct {
	Service  string
	Username string
}
