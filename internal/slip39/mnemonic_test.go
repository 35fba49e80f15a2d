package slip39

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleShare() Share {
	return Share{
		Identifier:        12345,
		Extendable:        true,
		IterationExponent: 1,
		GroupIndex:        2,
		GroupThreshold:    3,
		GroupCount:        5,
		MemberIndex:       1,
		MemberThreshold:   2,
		Value:             []byte("0123456789ABCDEF"),
	}
}

func TestEncodeDecodeMnemonicRoundTrip(t *testing.T) {
	t.Parallel()

	share := sampleShare()

	mnemonic, err := EncodeMnemonic(share)
	require.NoError(t, err)

	decoded, err := DecodeMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, share, decoded)
}

func TestValidateMnemonic(t *testing.T) {
	t.Parallel()

	mnemonic, err := EncodeMnemonic(sampleShare())
	require.NoError(t, err)
	assert.True(t, ValidateMnemonic(mnemonic))
}

func TestDecodeMnemonicRejectsUnknownWord(t *testing.T) {
	t.Parallel()

	mnemonic, err := EncodeMnemonic(sampleShare())
	require.NoError(t, err)

	corrupted := "zzznotaword " + mnemonic
	assert.False(t, ValidateMnemonic(corrupted))
}

func TestDecodeMnemonicRejectsTamperedChecksum(t *testing.T) {
	t.Parallel()

	mnemonic, err := EncodeMnemonic(sampleShare())
	require.NoError(t, err)

	words := strings.Fields(mnemonic)
	idx := wordIndex[words[0]]
	words[0] = wordList[(int(idx)+1)%len(wordList)]

	assert.False(t, ValidateMnemonic(strings.Join(words, " ")))
}

func TestDecodeMnemonicRejectsShortInput(t *testing.T) {
	t.Parallel()

	_, err := DecodeMnemonic("one two three")
	require.Error(t, err)
}

func TestEncodeMnemonicRejectsUnrepresentableShareLength(t *testing.T) {
	t.Parallel()

	share := sampleShare()
	share.Value = make([]byte, 24)

	_, err := EncodeMnemonic(share)
	require.Error(t, err)
}
