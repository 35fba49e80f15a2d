package slip39

import (
	"github.com/mrz1836/sigil/internal/sigilcrypto"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// MemberGroup describes one group's member threshold and share count within
// a two-tier policy.
type MemberGroup struct {
	Threshold int
	Count     int
}

// Policy is a fully validated two-tier sharing policy: a group threshold
// over a list of member groups.
type Policy struct {
	GroupThreshold int
	Groups         []MemberGroup
}

func validatePolicy(p Policy) error {
	if len(p.Groups) < 1 || len(p.Groups) > maxShareCount {
		return sigilerr.ErrInvalidMemberPolicy
	}
	if p.GroupThreshold < 1 || p.GroupThreshold > len(p.Groups) {
		return sigilerr.ErrGroupThresholdExceedsCount
	}
	for _, g := range p.Groups {
		if g.Count < 1 || g.Count > maxShareCount {
			return sigilerr.ErrInvalidMemberPolicy
		}
		if g.Threshold < 1 || g.Threshold > g.Count {
			return sigilerr.ErrMemberThresholdExceedsCount
		}
		if g.Threshold == 1 && g.Count > 1 {
			return sigilerr.ErrInvalidMemberPolicy
		}
	}
	return nil
}

func validateSecret(secret []byte) error {
	if len(secret)%2 != 0 {
		return sigilerr.ErrSecretOddLength
	}
	if len(secret)*8 < MinEntropyBits {
		return sigilerr.ErrSecretTooShort
	}
	return nil
}

// splitTwoTier encrypts masterSecret under passphrase and splits the result
// into one set of mnemonics per group.
func splitTwoTier(masterSecret []byte, p Policy, passphrase string, iterationExponent int, extendable bool, identifier uint16) ([][]string, error) {
	if err := validateSecret(masterSecret); err != nil {
		return nil, err
	}
	if err := validatePolicy(p); err != nil {
		return nil, err
	}
	if !isPrintableASCII(passphrase) {
		return nil, sigilerr.ErrInvalidPassphrase
	}

	salt := feistelSalt(extendable, identifier)
	encryptedSecret, err := feistelCrypt(masterSecret, passphrase, iterationExponent, salt, false)
	if err != nil {
		return nil, err
	}

	groupShares, err := split(encryptedSecret, p.GroupThreshold, len(p.Groups))
	if err != nil {
		return nil, err
	}

	mnemonics := make([][]string, len(p.Groups))
	for gi, g := range p.Groups {
		groupShare := groupShares[byte(gi)]

		memberShares, splitErr := split(groupShare, g.Threshold, g.Count)
		if splitErr != nil {
			return nil, splitErr
		}

		group := make([]string, g.Count)
		for mi := 0; mi < g.Count; mi++ {
			share := Share{
				Identifier:        identifier,
				Extendable:        extendable,
				IterationExponent: iterationExponent,
				GroupIndex:        gi,
				GroupThreshold:    p.GroupThreshold,
				GroupCount:        len(p.Groups),
				MemberIndex:       mi,
				MemberThreshold:   g.Threshold,
				Value:             memberShares[byte(mi)],
			}

			mnemonic, encodeErr := EncodeMnemonic(share)
			if encodeErr != nil {
				return nil, encodeErr
			}
			group[mi] = mnemonic
		}
		mnemonics[gi] = group
	}

	return mnemonics, nil
}

type decodedGroup struct {
	threshold int
	members   map[byte][]byte
}

// combineTwoTier decodes mnemonics, verifies they all belong to one
// consistent share set, recovers each contributing group's share, then
// recovers and decrypts the master secret.
func combineTwoTier(mnemonics []string, passphrase string) ([]byte, error) {
	if len(mnemonics) == 0 {
		return nil, sigilerr.ErrWrongMemberCount
	}

	var (
		identifier     uint16
		extendable     bool
		iterationExp   int
		groupThreshold int
		groupCount     int
		haveCommon     bool
	)

	groups := make(map[int]*decodedGroup)

	for _, m := range mnemonics {
		share, err := DecodeMnemonic(m)
		if err != nil {
			return nil, err
		}

		if !haveCommon {
			identifier = share.Identifier
			extendable = share.Extendable
			iterationExp = share.IterationExponent
			groupThreshold = share.GroupThreshold
			groupCount = share.GroupCount
			haveCommon = true
		} else if share.Identifier != identifier || share.Extendable != extendable ||
			share.IterationExponent != iterationExp || share.GroupThreshold != groupThreshold ||
			share.GroupCount != groupCount {
			return nil, sigilerr.ErrInconsistentMetadata
		}

		g, ok := groups[share.GroupIndex]
		if !ok {
			g = &decodedGroup{threshold: share.MemberThreshold, members: make(map[byte][]byte)}
			groups[share.GroupIndex] = g
		} else if g.threshold != share.MemberThreshold {
			return nil, sigilerr.ErrInconsistentThreshold
		}
		g.members[byte(share.MemberIndex)] = share.Value
	}

	groupPoints := make(map[byte][]byte)
	for gi, g := range groups {
		if len(g.members) != g.threshold {
			return nil, sigilerr.ErrWrongMemberCount
		}
		groupSecret, err := recoverSecret(g.threshold, g.members)
		if err != nil {
			return nil, err
		}
		groupPoints[byte(gi)] = groupSecret
	}

	if len(groupPoints) != groupThreshold {
		return nil, sigilerr.ErrWrongGroupCount
	}

	encryptedSecret, err := recoverSecret(groupThreshold, groupPoints)
	if err != nil {
		return nil, err
	}

	if !isPrintableASCII(passphrase) {
		return nil, sigilerr.ErrInvalidPassphrase
	}

	salt := feistelSalt(extendable, identifier)
	masterSecret, err := feistelCrypt(encryptedSecret, passphrase, iterationExp, salt, true)
	if err != nil {
		return nil, err
	}

	return masterSecret, nil
}

func generateIdentifier() (uint16, error) {
	b, err := sigilcrypto.RandomBytes(2)
	if err != nil {
		return 0, err
	}
	v := uint16(b[0])<<8 | uint16(b[1])
	return v & ((1 << IDBitsLength) - 1), nil
}
