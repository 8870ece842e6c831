// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pass-vault/models"

// records is the default implementation of [Records]: a plain map from
// service name to credential. Invariant: every key equals its record's
// Service field, maintained by Upsert being the only insertion path.
type records struct {
	entries map[string]models.Credential
}

// NewRecords constructs an empty [Records] set.
func NewRecords() Records {
	return &records{entries: make(map[string]models.Credential)}
}

// Upsert implements [Records].
func (r *records) Upsert(service, username, password string) {
	r.entries[service] = models.Credential{
		Service:  service,
		Username: username,
		Password: password,
	}
}

// Get implements [Records].
func (r *records) Get(service string) (models.Credential, bool) {
	cred, ok := r.entries[service]
	return cred, ok
}

// Delete implements [Records].
func (r *records) Delete(service string) bool {
	if _, ok := r.entries[service]; !ok {
		return false
	}
	delete(r.entries, service)
	return true
}

// List implements [Records]. Passwords are deliberately absent from the
// returned summaries; enumeration must never expose secrets.
func (r *records) List() []models.ServiceSummary {
	out := make([]models.ServiceSummary, 0, len(r.entries))
	for _, cred := range r.entries {
		out = append(out, cred.Summary())
	}
	return out
}

// Len implements [Records].
func (r *records) Len() int {
	return len(r.entries)
}
