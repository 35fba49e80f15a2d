package slip39

import (
	"github.com/mrz1836/sigil/internal/gf256"
	"github.com/mrz1836/sigil/internal/sigilcrypto"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// DigestIndex and SecretIndex are the fixed abscissas used by every Shamir
// split in the two-tier pipeline: the digest (plus random pad) lives at 254,
// the plaintext value being shared lives at 255.
const (
	DigestIndex = 254
	SecretIndex = 255

	maxShareCount = 16
)

// interpolate evaluates, at abscissa x, the unique polynomial of degree
// len(points)-1 that passes through the given points. All values must share
// one byte length. If x is already a key of points, its value is returned
// directly without computation.
func interpolate(points map[byte][]byte, x byte) ([]byte, error) {
	if v, ok := points[x]; ok {
		return v, nil
	}

	length := -1
	for _, v := range points {
		if length == -1 {
			length = len(v)
			continue
		}
		if len(v) != length {
			return nil, sigilerr.ErrShareLengthMismatch
		}
	}

	xs := make([]byte, 0, len(points))
	for xi := range points {
		xs = append(xs, xi)
	}

	logProd := 0
	for _, xk := range xs {
		logProd += gf256.Log(gf256.Sub(xk, x))
	}

	result := make([]byte, length)
	for _, xi := range xs {
		logBasisI := logProd - gf256.Log(gf256.Sub(xi, x))
		for _, xk := range xs {
			if xk == xi {
				continue
			}
			logBasisI -= gf256.Log(gf256.Sub(xi, xk))
		}
		logBasisI %= 255
		if logBasisI < 0 {
			logBasisI += 255
		}

		yi := points[xi]
		for j := 0; j < length; j++ {
			if yi[j] == 0 {
				continue
			}
			term := gf256.Exp((gf256.Log(yi[j]) + logBasisI) % 255)
			result[j] = gf256.Add(result[j], term)
		}
	}

	return result, nil
}

// split divides secret into shareCount points on a random polynomial of
// degree threshold-1, placing secret itself at SecretIndex and a digest of
// secret (plus a random pad) at DigestIndex. Returns shares at abscissas
// 0..shareCount-1.
//
// threshold=1 is a special case: every returned share equals secret
// verbatim, with no randomness and no digest, per SLIP-0039.
func split(secret []byte, threshold, shareCount int) (map[byte][]byte, error) {
	if threshold < 1 || threshold > shareCount {
		return nil, sigilerr.ErrInvalidThreshold
	}
	if shareCount > maxShareCount {
		return nil, sigilerr.ErrTooManyShares
	}

	shares := make(map[byte][]byte, shareCount)

	if threshold == 1 {
		for i := 0; i < shareCount; i++ {
			shares[byte(i)] = secret
		}
		return shares, nil
	}

	randomPad, err := sigilcrypto.RandomBytes(len(secret) - DigestLength)
	if err != nil {
		return nil, err
	}
	digest, err := computeDigest(secret, randomPad)
	if err != nil {
		return nil, err
	}
	digestShare := append(append([]byte{}, digest...), randomPad...)

	basis := map[byte][]byte{
		DigestIndex: digestShare,
		SecretIndex: secret,
	}

	// threshold-2 random filler shares at abscissas 0..threshold-3 fully
	// determine the polynomial together with the two fixed points above.
	for i := 0; i < threshold-2; i++ {
		filler, fillerErr := sigilcrypto.RandomBytes(len(secret))
		if fillerErr != nil {
			return nil, fillerErr
		}
		basis[byte(i)] = filler
		shares[byte(i)] = filler
	}

	for i := threshold - 2; i < shareCount; i++ {
		value, interpErr := interpolate(basis, byte(i))
		if interpErr != nil {
			return nil, interpErr
		}
		shares[byte(i)] = value
	}

	return shares, nil
}

// recoverSecret reconstructs the shared secret from a set of shares indexed
// by abscissa, verifying the digest stored at DigestIndex. threshold is the
// number of shares the caller has already confirmed are present; fewer than
// two shares means the threshold=1 case, where every share equals the
// secret.
func recoverSecret(threshold int, shares map[byte][]byte) ([]byte, error) {
	if threshold == 1 {
		for _, v := range shares {
			return v, nil
		}
		return nil, sigilerr.ErrWrongMemberCount
	}

	secret, err := interpolate(shares, SecretIndex)
	if err != nil {
		return nil, err
	}
	digestShare, err := interpolate(shares, DigestIndex)
	if err != nil {
		return nil, err
	}
	if len(digestShare) < DigestLength {
		return nil, sigilerr.ErrDigestMismatch
	}

	storedDigest := digestShare[:DigestLength]
	randomPad := digestShare[DigestLength:]

	digest, err := computeDigest(secret, randomPad)
	if err != nil {
		return nil, err
	}
	if !constantTimeEqual(storedDigest, digest) {
		return nil, sigilerr.ErrDigestMismatch
	}

	return secret, nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
