package slip39

import (
	"crypto/hmac"
	"crypto/sha256"

	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// DigestLength is the size, in bytes, of the integrity digest stored
// alongside the random pad at DigestIndex.
const DigestLength = 4

// computeDigest returns the first DigestLength bytes of
// HMAC-SHA-256(key=randomPad, msg=secret).
func computeDigest(secret, randomPad []byte) ([]byte, error) {
	if len(secret) <= DigestLength {
		return nil, sigilerr.ErrSecretTooShort
	}
	mac := hmac.New(sha256.New, randomPad)
	mac.Write(secret)
	return mac.Sum(nil)[:DigestLength], nil
}
