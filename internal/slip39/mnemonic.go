package slip39

import (
	"strings"

	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// Share is the decoded content of one mnemonic: its metadata plus the raw
// Shamir share value it carries.
type Share struct {
	Identifier        uint16
	Extendable        bool
	IterationExponent int
	GroupIndex        int
	GroupThreshold    int
	GroupCount        int
	MemberIndex       int
	MemberThreshold   int
	Value             []byte
}

// EncodeMnemonic packs a Share into its word-list representation.
func EncodeMnemonic(s Share) (string, error) {
	if s.Identifier >= 1<<IDBitsLength {
		return "", sigilerr.ErrInvalidThreshold
	}

	words, padding, err := shareWordCount(len(s.Value))
	if err != nil {
		return "", err
	}

	w := &bitWriter{}
	w.writeBits(uint32(s.Identifier), IDBitsLength)
	w.writeBits(boolBit(s.Extendable), ExtendableFlagBits)
	w.writeBits(uint32(s.IterationExponent), IterationExpBitsLength)
	w.writeBits(uint32(s.GroupIndex), 4)
	w.writeBits(uint32(s.GroupThreshold-1), 4)
	w.writeBits(uint32(s.GroupCount-1), 4)
	w.writeBits(uint32(s.MemberIndex), 4)
	w.writeBits(uint32(s.MemberThreshold-1), 4)

	if padding > 0 {
		w.writeBits(0, padding)
	}
	w.writeBytes(s.Value)

	dataWords := make([]uint32, len(w.words))
	for i, v := range w.words {
		dataWords[i] = uint32(v)
	}

	checksum := rs1024CreateChecksum(s.Extendable, dataWords)

	total := make([]uint16, 0, prefixWordsLength+words+checksumWordsLength)
	total = append(total, w.words...)
	for _, c := range checksum {
		total = append(total, uint16(c))
	}

	out := make([]string, len(total))
	for i, idx := range total {
		out[i] = wordList[idx]
	}

	return strings.Join(out, " "), nil
}

// DecodeMnemonic parses and fully validates a mnemonic string, returning the
// decoded Share on success.
func DecodeMnemonic(mnemonic string) (Share, error) {
	fields := strings.Fields(strings.ToLower(mnemonic))
	if len(fields) < MnemonicWordsLength {
		return Share{}, sigilerr.ErrMnemonicTooShort
	}

	indices := make([]uint16, len(fields))
	for i, word := range fields {
		idx, ok := wordIndex[word]
		if !ok {
			return Share{}, sigilerr.ErrUnknownWord
		}
		indices[i] = idx
	}

	n := len(indices)
	shareWords := n - metadataWordsLength
	if shareWords < 1 {
		return Share{}, sigilerr.ErrMnemonicTooShort
	}
	if (RadixBits*shareWords)%16 > 8 {
		return Share{}, sigilerr.ErrPaddingRange
	}

	shareBytes := (RadixBits * shareWords) / 8
	padding := RadixBits*shareWords - shareBytes*8
	if shareBytes < 1 {
		return Share{}, sigilerr.ErrPaddingRange
	}

	r := newBitReader(indices[:n-checksumWordsLength])

	identifier, err := r.readBits(IDBitsLength)
	if err != nil {
		return Share{}, err
	}
	extFlag, err := r.readBits(ExtendableFlagBits)
	if err != nil {
		return Share{}, err
	}
	iterExp, err := r.readBits(IterationExpBitsLength)
	if err != nil {
		return Share{}, err
	}
	groupIndex, err := r.readBits(4)
	if err != nil {
		return Share{}, err
	}
	groupThresholdM1, err := r.readBits(4)
	if err != nil {
		return Share{}, err
	}
	groupCountM1, err := r.readBits(4)
	if err != nil {
		return Share{}, err
	}
	memberIndex, err := r.readBits(4)
	if err != nil {
		return Share{}, err
	}
	memberThresholdM1, err := r.readBits(4)
	if err != nil {
		return Share{}, err
	}

	extendable := extFlag == 1

	if padding > 0 {
		padBits, padErr := r.readBits(padding)
		if padErr != nil {
			return Share{}, padErr
		}
		if padBits != 0 {
			return Share{}, sigilerr.ErrPaddingNonzero
		}
	}

	value, err := r.readBytes(shareBytes)
	if err != nil {
		return Share{}, err
	}

	dataWords := make([]uint32, n)
	for i, idx := range indices {
		dataWords[i] = uint32(idx)
	}
	if !rs1024VerifyChecksum(extendable, dataWords) {
		return Share{}, sigilerr.ErrChecksumInvalid
	}

	groupCount := int(groupCountM1) + 1
	groupThreshold := int(groupThresholdM1) + 1
	if groupCount < groupThreshold {
		return Share{}, sigilerr.ErrGroupCountBelowThreshold
	}

	return Share{
		Identifier:        uint16(identifier),
		Extendable:        extendable,
		IterationExponent: int(iterExp),
		GroupIndex:        int(groupIndex),
		GroupThreshold:    groupThreshold,
		GroupCount:        groupCount,
		MemberIndex:       int(memberIndex),
		MemberThreshold:   int(memberThresholdM1) + 1,
		Value:             value,
	}, nil
}

// ValidateMnemonic reports whether mnemonic decodes cleanly, collapsing
// every failure mode into false.
func ValidateMnemonic(mnemonic string) bool {
	_, err := DecodeMnemonic(mnemonic)
	return err == nil
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
