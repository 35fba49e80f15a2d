package slip39

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeistelRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("ABCDEFGHIJKLMNOP")
	salt := feistelSalt(false, 12345)

	encrypted, err := feistelCrypt(secret, "TREZOR", 0, salt, false)
	require.NoError(t, err)
	assert.NotEqual(t, secret, encrypted)

	decrypted, err := feistelCrypt(encrypted, "TREZOR", 0, salt, true)
	require.NoError(t, err)
	assert.Equal(t, secret, decrypted)
}

func TestFeistelWrongPassphraseFailsToRecover(t *testing.T) {
	t.Parallel()

	secret := []byte("ABCDEFGHIJKLMNOP")
	salt := feistelSalt(false, 12345)

	encrypted, err := feistelCrypt(secret, "TREZOR", 0, salt, false)
	require.NoError(t, err)

	decrypted, err := feistelCrypt(encrypted, "WRONG", 0, salt, true)
	require.NoError(t, err)
	assert.NotEqual(t, secret, decrypted)
}

func TestFeistelExtendableSaltIsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, feistelSalt(true, 12345))
	assert.NotEmpty(t, feistelSalt(false, 12345))
}

func TestFeistelRejectsOddLengthSecret(t *testing.T) {
	t.Parallel()

	_, err := feistelCrypt([]byte("odd"), "", 0, nil, false)
	require.Error(t, err)
}

func TestFeistelRejectsNonPrintablePassphrase(t *testing.T) {
	t.Parallel()

	secret := []byte("ABCDEFGHIJKLMNOP")
	_, err := feistelCrypt(secret, "bad\x00pass", 0, nil, false)
	require.Error(t, err)
}

func TestFeistelIterationsRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := feistelIterations(-1)
	require.Error(t, err)

	_, err = feistelIterations(MaxIterationExponent + 1)
	require.Error(t, err)
}

func TestFeistelIterationsScalesWithExponent(t *testing.T) {
	t.Parallel()

	base, err := feistelIterations(0)
	require.NoError(t, err)

	doubled, err := feistelIterations(1)
	require.NoError(t, err)

	assert.Equal(t, base*2, doubled)
}
