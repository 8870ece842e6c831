// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService is the default implementation of [VaultService]. It holds
// the session's record set; the persisted form is delegated entirely to
// [store.VaultFile].
type vaultService struct {
	file    store.VaultFile
	records store.Records
	key     []byte
	logger  *logger.Logger
}

// NewVaultService constructs a [VaultService] starting from an empty
// record set.
func NewVaultService(file store.VaultFile, log *logger.Logger) VaultService {
	return &vaultService{
		file:    file,
		records: store.NewRecords(),
		logger:  log,
	}
}

// SetSessionKey implements [VaultService].
func (v *vaultService) SetSessionKey(key []byte) {
	v.key = key
}

// Load implements [VaultService]. Replaces the current record set with the
// persisted one; meant to run once, before any mutation.
func (v *vaultService) Load() (int, error) {
	records, skipped, err := v.file.Load(v.key)
	if err != nil {
		return skipped, err
	}

	v.records = records
	if skipped > 0 {
		v.logger.Warn().Int("skipped", skipped).Msg("vault loaded with unparseable lines")
	}

	return skipped, nil
}

// Add implements [VaultService]. Values that would corrupt the unescaped
// line format are rejected here so [store.Records.Upsert] can stay
// unconditional.
func (v *vaultService) Add(service, username, password string) error {
	if service == "" {
		return ErrEmptyService
	}
	if containsReserved(service) || containsReserved(username) {
		return ErrReservedCharacter
	}

	v.records.Upsert(service, username, password)
	return nil
}

// Get implements [VaultService].
func (v *vaultService) Get(service string) (models.Credential, bool) {
	return v.records.Get(service)
}

// Delete implements [VaultService].
func (v *vaultService) Delete(service string) bool {
	return v.records.Delete(service)
}

// List implements [VaultService].
func (v *vaultService) List() []models.ServiceSummary {
	return v.records.List()
}

// Count implements [VaultService].
func (v *vaultService) Count() int {
	return v.records.Len()
}

// SaveAll implements [VaultService].
func (v *vaultService) SaveAll() error {
	return v.file.Save(v.records, v.key)
}

func containsReserved(value string) bool {
	return strings.ContainsAny(value, store.Delimiter+"\n\r")
}
