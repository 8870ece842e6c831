package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func newTestMasterFile(t *testing.T) store.MasterFile {
	t.Helper()
	dir := t.TempDir()
	return store.NewMasterFile(
		filepath.Join(dir, "master.hash"),
		filepath.Join(dir, "master.salt"),
		crypto.NewKeyChain(),
		logger.Nop(),
	)
}

func newTestAuthService(t *testing.T, cipher string) AuthService {
	t.Helper()
	auth, err := NewAuthService(newTestMasterFile(t), crypto.NewHasher(), crypto.NewKeyChain(), cipher, logger.Nop())
	require.NoError(t, err)
	return auth
}

func TestAuth_FirstRunUntilSetup(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)

	assert.True(t, auth.FirstRun())
	require.NoError(t, auth.Setup("hunter2"))
	assert.False(t, auth.FirstRun())
}

func TestAuth_VerifyCorrectAndWrongPassphrase(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)
	require.NoError(t, auth.Setup("hunter2"))

	assert.True(t, auth.Verify("hunter2"))
	assert.False(t, auth.Verify("hunter3"))
	assert.False(t, auth.Verify(""))
}

func TestAuth_VerifyBeforeSetupAlwaysFalse(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)

	assert.False(t, auth.Verify("anything"))
}

func TestAuth_SetupRejectsEmptyPassphrase(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)

	require.ErrorIs(t, auth.Setup(""), ErrEmptyPassphrase)
	assert.True(t, auth.FirstRun())
}

func TestAuth_DigestSurvivesRestart(t *testing.T) {
	master := newTestMasterFile(t)

	first, err := NewAuthService(master, crypto.NewHasher(), crypto.NewKeyChain(), config.CipherXOR, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Setup("hunter2"))

	// A second service over the same files sees the persisted digest.
	second, err := NewAuthService(master, crypto.NewHasher(), crypto.NewKeyChain(), config.CipherXOR, logger.Nop())
	require.NoError(t, err)

	assert.False(t, second.FirstRun())
	assert.True(t, second.Verify("hunter2"))
	assert.False(t, second.Verify("wrong"))
}

func TestAuth_SessionKeyXORModeIsPassphrase(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)

	key, err := auth.SessionKey("masterpw")
	require.NoError(t, err)
	assert.Equal(t, []byte("masterpw"), key)
}

func TestAuth_SessionKeyGCMModeDerivedAndStable(t *testing.T) {
	master := newTestMasterFile(t)

	auth, err := NewAuthService(master, crypto.NewHasher(), crypto.NewKeyChain(), config.CipherAESGCM, logger.Nop())
	require.NoError(t, err)

	k1, err := auth.SessionKey("masterpw")
	require.NoError(t, err)
	require.Len(t, k1, 32)
	assert.NotEqual(t, []byte("masterpw"), k1)

	// Same passphrase, same persisted salt, same key.
	k2, err := auth.SessionKey("masterpw")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestAuth_SessionKeyRejectsEmptyPassphrase(t *testing.T) {
	auth := newTestAuthService(t, config.CipherXOR)

	_, err := auth.SessionKey("")
	require.ErrorIs(t, err, ErrEmptyPassphrase)
}
