// Package slip39 implements SLIP-0039 Shamir's Secret-Sharing for Mnemonic
// Codes: a two-tier (group, then member) split of a master secret into
// recoverable mnemonic phrases, with optional passphrase encryption.
package slip39

import (
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// DefaultIterationExponent and DefaultGroupThreshold are applied by Generate
// when left at the GenerateOptions zero value. DefaultExtendable is not
// auto-applied, since Go's bool zero value can't be distinguished from an
// explicit false; callers wanting the recommended extendable backup should
// set Extendable: DefaultExtendable themselves.
const (
	DefaultIterationExponent = 0
	DefaultExtendable        = true
	DefaultGroupThreshold    = 1
)

// GenerateOptions configures Generate. Groups and GroupThreshold fall back
// to a single 1-of-1 group when left at their zero value; Extendable has no
// implicit default and must be set explicitly by the caller.
type GenerateOptions struct {
	Groups            []MemberGroup
	GroupThreshold    int
	Passphrase        string
	IterationExponent int
	Extendable        bool
	Identifier        uint16 // 0 means "generate a fresh one"
}

// Generate splits masterSecret into a two-tier set of SLIP-39 mnemonics.
// The returned slice has one element per group, each holding that group's
// member mnemonics in member-index order.
func Generate(masterSecret []byte, opts GenerateOptions) ([][]string, error) {
	groups := opts.Groups
	groupThreshold := opts.GroupThreshold
	if len(groups) == 0 {
		groups = []MemberGroup{{Threshold: 1, Count: 1}}
	}
	if groupThreshold == 0 {
		groupThreshold = DefaultGroupThreshold
	}

	identifier := opts.Identifier
	if identifier == 0 {
		id, err := generateIdentifier()
		if err != nil {
			return nil, err
		}
		identifier = id
	}

	policy := Policy{GroupThreshold: groupThreshold, Groups: groups}

	return splitTwoTier(masterSecret, policy, opts.Passphrase, opts.IterationExponent, opts.Extendable, identifier)
}

// Recover reassembles the master secret from a set of mnemonics gathered
// from one or more groups, undoing the passphrase encryption applied at
// generation time. An empty passphrase must be supplied if none was used.
func Recover(mnemonics []string, passphrase string) ([]byte, error) {
	if len(mnemonics) == 0 {
		return nil, sigilerr.ErrWrongMemberCount
	}
	return combineTwoTier(mnemonics, passphrase)
}
