package slip39

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRS1024RoundTrip(t *testing.T) {
	t.Parallel()

	for _, extendable := range []bool{false, true} {
		data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		checksum := rs1024CreateChecksum(extendable, data)
		assert.Len(t, checksum, checksumWordsLength)

		full := append(append([]uint32{}, data...), checksum...)
		assert.True(t, rs1024VerifyChecksum(extendable, full))
	}
}

func TestRS1024DetectsCorruption(t *testing.T) {
	t.Parallel()

	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	checksum := rs1024CreateChecksum(false, data)
	full := append(append([]uint32{}, data...), checksum...)

	full[0] ^= 1
	assert.False(t, rs1024VerifyChecksum(false, full))
}

func TestRS1024CustomizationStringDiffers(t *testing.T) {
	t.Parallel()

	data := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cNonExt := rs1024CreateChecksum(false, data)
	cExt := rs1024CreateChecksum(true, data)
	assert.NotEqual(t, cNonExt, cExt)

	full := append(append([]uint32{}, data...), cNonExt...)
	assert.False(t, rs1024VerifyChecksum(true, full))
}
