package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/sigil/internal/slip39"
)

func TestParseGroupSpecs(t *testing.T) {
	tests := []struct {
		name    string
		specs   []string
		want    []slip39.MemberGroup
		wantErr bool
	}{
		{
			name:  "single group",
			specs: []string{"3of5"},
			want:  []slip39.MemberGroup{{Threshold: 3, Count: 5}},
		},
		{
			name:  "multiple groups",
			specs: []string{"2of3", "1of1"},
			want: []slip39.MemberGroup{
				{Threshold: 2, Count: 3},
				{Threshold: 1, Count: 1},
			},
		},
		{name: "missing of", specs: []string{"35"}, wantErr: true},
		{name: "non-numeric threshold", specs: []string{"aof5"}, wantErr: true},
		{name: "non-numeric count", specs: []string{"3ofb"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseGroupSpecs(tc.specs)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveMasterSecret_Hex(t *testing.T) {
	generateSecretHex = "00112233445566778899aabbccddeeff"
	defer func() { generateSecretHex = "" }()

	secret, err := resolveMasterSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 16)
}

func TestResolveMasterSecret_InvalidHex(t *testing.T) {
	generateSecretHex = "not-hex"
	defer func() { generateSecretHex = "" }()

	_, err := resolveMasterSecret()
	require.Error(t, err)
}

func TestResolveMasterSecret_GeneratesRandomBits(t *testing.T) {
	generateSecretHex = ""
	generateBits = 256

	secret, err := resolveMasterSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 32)
}

func TestResolveMasterSecret_BitsTooShort(t *testing.T) {
	generateSecretHex = ""
	generateBits = 64
	defer func() { generateBits = 256 }()

	_, err := resolveMasterSecret()
	require.Error(t, err)
}
