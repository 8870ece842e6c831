package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func newTestVaultService(t *testing.T) VaultService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passwords.dat")
	file := store.NewVaultFile(path, crypto.NewXORCodec(), logger.Nop())
	return NewVaultService(file, logger.Nop())
}

func TestVault_AddGetDelete(t *testing.T) {
	vault := newTestVaultService(t)

	require.NoError(t, vault.Add("github", "alice", "Secr3t!"))

	cred, ok := vault.Get("github")
	require.True(t, ok)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "Secr3t!", cred.Password)

	assert.True(t, vault.Delete("github"))
	assert.False(t, vault.Delete("github"))

	_, ok = vault.Get("github")
	assert.False(t, ok)
}

func TestVault_AddOverwrites(t *testing.T) {
	vault := newTestVaultService(t)

	require.NoError(t, vault.Add("github", "a", "pw1"))
	require.NoError(t, vault.Add("github", "b", "pw2"))

	assert.Equal(t, 1, vault.Count())

	cred, ok := vault.Get("github")
	require.True(t, ok)
	assert.Equal(t, "b", cred.Username)
}

func TestVault_AddValidation(t *testing.T) {
	vault := newTestVaultService(t)

	tests := []struct {
		name     string
		service  string
		username string
		wantErr  error
	}{
		{"empty service", "", "alice", ErrEmptyService},
		{"delimiter in service", "git|hub", "alice", ErrReservedCharacter},
		{"delimiter in username", "github", "ali|ce", ErrReservedCharacter},
		{"newline in service", "git\nhub", "alice", ErrReservedCharacter},
		{"newline in username", "github", "ali\nce", ErrReservedCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := vault.Add(tt.service, tt.username, "pw")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 0, vault.Count())
}

func TestVault_DelimiterInPasswordAllowed(t *testing.T) {
	vault := newTestVaultService(t)
	vault.SetSessionKey([]byte("masterpw"))

	// The password field is codec-encoded on disk, so reserved characters
	// in it cannot corrupt the line format.
	require.NoError(t, vault.Add("github", "alice", "p|w\nwith|stuff"))
	require.NoError(t, vault.SaveAll())

	skipped, err := vault.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)

	cred, ok := vault.Get("github")
	require.True(t, ok)
	assert.Equal(t, "p|w\nwith|stuff", cred.Password)
}

func TestVault_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.dat")
	file := store.NewVaultFile(path, crypto.NewXORCodec(), logger.Nop())

	writer := NewVaultService(file, logger.Nop())
	writer.SetSessionKey([]byte("masterpw"))
	require.NoError(t, writer.Add("github", "alice", "Secr3t!"))
	require.NoError(t, writer.SaveAll())

	reader := NewVaultService(file, logger.Nop())
	reader.SetSessionKey([]byte("masterpw"))
	skipped, err := reader.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)

	cred, ok := reader.Get("github")
	require.True(t, ok)
	assert.Equal(t, "github", cred.Service)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "Secr3t!", cred.Password)
}

func TestVault_ListOmitsPasswords(t *testing.T) {
	vault := newTestVaultService(t)

	require.NoError(t, vault.Add("github", "alice", "Secr3t!"))
	require.NoError(t, vault.Add("mail", "bob", "An0ther$ecret"))

	for _, summary := range vault.List() {
		assert.NotContains(t, summary.Service, "Secr3t!")
		assert.NotContains(t, summary.Username, "Secr3t!")
		assert.NotContains(t, summary.Service, "An0ther$ecret")
		assert.NotContains(t, summary.Username, "An0ther$ecret")
	}
	assert.Len(t, vault.List(), 2)
}

func TestVault_LoadWithoutFileStartsEmpty(t *testing.T) {
	vault := newTestVaultService(t)
	vault.SetSessionKey([]byte("masterpw"))

	skipped, err := vault.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 0, vault.Count())
}
