package totp_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minemind/authkit/pkg/totp"
)

func TestSealOpenSecret(t *testing.T) {
	t.Parallel()

	encoded, err := totp.GenerateSealKey()
	require.NoError(t, err)
	key, err := totp.DecodeSealKey(encoded)
	require.NoError(t, err)

	secret, err := totp.GenerateSecret()
	require.NoError(t, err)

	sealed, err := totp.SealSecret(secret, key)
	require.NoError(t, err)
	assert.NotEqual(t, secret, sealed)

	opened, err := totp.OpenSecret(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, secret, opened)

	// Sealing is randomized via the nonce.
	sealed2, err := totp.SealSecret(secret, key)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, sealed2)
}

func TestSealSecretKeyLength(t *testing.T) {
	t.Parallel()

	_, err := totp.SealSecret("whatever", []byte("short"))
	assert.ErrorIs(t, err, totp.ErrInvalidSealKey)

	_, err = totp.OpenSecret("whatever", []byte("short"))
	assert.ErrorIs(t, err, totp.ErrInvalidSealKey)
}

func TestOpenSecretFailures(t *testing.T) {
	t.Parallel()

	encoded, err := totp.GenerateSealKey()
	require.NoError(t, err)
	key, err := totp.DecodeSealKey(encoded)
	require.NoError(t, err)

	t.Run("not base64", func(t *testing.T) {
		t.Parallel()
		_, err := totp.OpenSecret("%%%", key)
		assert.ErrorIs(t, err, totp.ErrOpenFailed)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		_, err := totp.OpenSecret(base64.StdEncoding.EncodeToString([]byte("tiny")), key)
		assert.ErrorIs(t, err, totp.ErrCiphertextShort)
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()
		sealed, err := totp.SealSecret("secret", key)
		require.NoError(t, err)

		otherEncoded, err := totp.GenerateSealKey()
		require.NoError(t, err)
		otherKey, err := totp.DecodeSealKey(otherEncoded)
		require.NoError(t, err)

		_, err = totp.OpenSecret(sealed, otherKey)
		assert.ErrorIs(t, err, totp.ErrOpenFailed)
	})
}

func TestDecodeSealKey(t *testing.T) {
	t.Parallel()

	_, err := totp.DecodeSealKey("!!!")
	assert.Error(t, err)

	_, err = totp.DecodeSealKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, totp.ErrInvalidSealKey)
}
