package slip39

// Wire-format constants shared by the mnemonic codec. Names mirror the
// SLIP-0039 specification; values are bit-exact and must not be changed.
const (
	RadixBits              = 10 // bits encoded per mnemonic word
	IDBitsLength           = 15 // bits of the random identifier
	IterationExpBitsLength = 4  // bits of the iteration exponent
	ExtendableFlagBits     = 1  // bits of the extendable-backup flag

	// metadataWordsLength is the word count of the fixed prefix (identifier,
	// flag, iteration exponent, and the five threshold/index nibbles) plus
	// the three trailing checksum words: 40 prefix bits + 30 checksum bits
	// = 7 words of 10 bits each.
	metadataWordsLength = 7
	prefixWordsLength   = 4

	MinEntropyBits      = 128
	MaxShareCount       = 16
	MnemonicWordsLength = 20
)
