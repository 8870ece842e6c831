package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func newTestVaultFile(t *testing.T) (VaultFile, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passwords.dat")
	return NewVaultFile(path, crypto.NewXORCodec(), logger.Nop()), path
}

func TestVaultFile_SaveLoadRoundTrip(t *testing.T) {
	vault, _ := newTestVaultFile(t)
	key := []byte("masterpw")

	recs := NewRecords()
	recs.Upsert("github", "alice", "Secr3t!")

	require.NoError(t, vault.Save(recs, key))

	loaded, skipped, err := vault.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Equal(t, 1, loaded.Len())

	cred, ok := loaded.Get("github")
	require.True(t, ok)
	assert.Equal(t, "github", cred.Service)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "Secr3t!", cred.Password)
}

func TestVaultFile_LoadAbsentFile(t *testing.T) {
	vault, _ := newTestVaultFile(t)

	recs, skipped, err := vault.Load([]byte("masterpw"))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 0, recs.Len())
}

func TestVaultFile_PasswordNotPlaintextOnDisk(t *testing.T) {
	vault, path := newTestVaultFile(t)

	recs := NewRecords()
	recs.Upsert("github", "alice", "Secr3t!")
	require.NoError(t, vault.Save(recs, []byte("masterpw")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Secr3t!")
	assert.True(t, strings.HasPrefix(string(raw), "github|alice|"))
}

func TestVaultFile_SaveOverwritesInFull(t *testing.T) {
	vault, _ := newTestVaultFile(t)
	key := []byte("masterpw")

	first := NewRecords()
	first.Upsert("github", "alice", "pw1")
	first.Upsert("mail", "bob", "pw2")
	require.NoError(t, vault.Save(first, key))

	second := NewRecords()
	second.Upsert("github", "alice", "pw1")
	require.NoError(t, vault.Save(second, key))

	loaded, _, err := vault.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())

	_, ok := loaded.Get("mail")
	assert.False(t, ok)
}

func TestVaultFile_MalformedLinesSkippedAndCounted(t *testing.T) {
	vault, path := newTestVaultFile(t)
	key := []byte("masterpw")

	codec := crypto.NewXORCodec()
	goodPassword, err := codec.Encode([]byte("pw"), key)
	require.NoError(t, err)

	lines := []string{
		"github|alice|" + goodPassword, // valid
		"mail|bob",                     // two fields, no password
		"a|b|c|d",                      // four fields
		"svc|carol|zznothex",           // undecodable password
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))

	loaded, skipped, err := vault.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, 1, loaded.Len())

	_, ok := loaded.Get("mail")
	assert.False(t, ok)
}

func TestVaultFile_BlankLinesIgnoredWithoutCounting(t *testing.T) {
	vault, path := newTestVaultFile(t)
	key := []byte("masterpw")

	codec := crypto.NewXORCodec()
	encoded, err := codec.Encode([]byte("pw"), key)
	require.NoError(t, err)

	content := "github|alice|" + encoded + "\n\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	loaded, skipped, err := vault.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, loaded.Len())
}

func TestVaultFile_GCMCodecRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passwords.dat")
	vault := NewVaultFile(path, crypto.NewGCMCodec(), logger.Nop())
	key := []byte(strings.Repeat("k", 32))

	recs := NewRecords()
	recs.Upsert("github", "alice", "Secr3t!")
	require.NoError(t, vault.Save(recs, key))

	loaded, skipped, err := vault.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)

	cred, ok := loaded.Get("github")
	require.True(t, ok)
	assert.Equal(t, "Secr3t!", cred.Password)
}
