// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Delimiter separates the three fields of a vault line. The format has no
// escaping mechanism, so the service layer rejects values containing it
// before they ever reach a record.
const Delimiter = "|"

// vaultFile is the default implementation of [VaultFile]. Each record
// becomes one text line, `service|username|encodedPassword`, with the
// password field run through the injected [crypto.Codec]. There is no
// header, version marker, or checksum.
type vaultFile struct {
	path   string
	codec  crypto.Codec
	logger *logger.Logger
}

// NewVaultFile constructs a [VaultFile] persisting to path with the given
// codec.
func NewVaultFile(path string, codec crypto.Codec, log *logger.Logger) VaultFile {
	return &vaultFile{path: path, codec: codec, logger: log}
}

// Save implements [VaultFile]. The destination is rewritten in full; this
// is a whole-vault flush, not an append or merge.
func (v *vaultFile) Save(records Records, key []byte) error {
	file, err := os.OpenFile(v.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWritingVaultFile, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, summary := range records.List() {
		cred, ok := records.Get(summary.Service)
		if !ok {
			continue
		}

		encoded, err := v.codec.Encode([]byte(cred.Password), key)
		if err != nil {
			return fmt.Errorf("encode password for %q: %w", cred.Service, err)
		}

		line := cred.Service + Delimiter + cred.Username + Delimiter + encoded
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("%w: %v", ErrWritingVaultFile, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingVaultFile, err)
	}

	v.logger.Debug().Int("records", records.Len()).Msg("vault file saved")
	return nil
}

// Load implements [VaultFile]. A missing file yields an empty record set:
// that is the first-run signal, not a failure. Unparseable lines are
// skipped and counted rather than aborting the load or vanishing silently.
func (v *vaultFile) Load(key []byte) (Records, int, error) {
	recs := NewRecords()

	file, err := os.Open(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			v.logger.Debug().Str("path", v.path).Msg("no vault file, starting empty")
			return recs, 0, nil
		}
		return recs, 0, fmt.Errorf("%w: %v", ErrReadingVaultFile, err)
	}
	defer file.Close()

	skipped := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.Split(line, Delimiter)
		if len(parts) != 3 {
			skipped++
			v.logger.Warn().Int("fields", len(parts)).Msg("skipping malformed vault line")
			continue
		}

		password, err := v.codec.Decode(parts[2], key)
		if err != nil {
			skipped++
			v.logger.Warn().Err(err).Str("service", parts[0]).Msg("skipping undecodable vault line")
			continue
		}

		recs.Upsert(parts[0], parts[1], string(password))
	}

	if err := scanner.Err(); err != nil {
		return recs, skipped, fmt.Errorf("%w: %v", ErrReadingVaultFile, err)
	}

	v.logger.Debug().Int("records", recs.Len()).Int("skipped", skipped).Msg("vault file loaded")
	return recs, skipped, nil
}
