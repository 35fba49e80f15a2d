package slip39

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

const (
	// IterationCount is the baseline PBKDF2 iteration count before scaling
	// by the iteration exponent.
	IterationCount = 10000

	// RoundCount is the number of Feistel rounds applied to the master secret.
	RoundCount = 4

	// MaxIterationExponent bounds the iteration exponent accepted at the
	// crypt boundary.
	MaxIterationExponent = 16

	saltPrefix = "shamir"
)

// feistelIterations returns the PBKDF2 iteration count for one Feistel
// round given the backup's iteration exponent.
func feistelIterations(exponent int) (int, error) {
	if exponent < 0 || exponent > MaxIterationExponent {
		return 0, sigilerr.ErrIterationExponentRange
	}
	return (IterationCount << uint(exponent)) / RoundCount, nil
}

// feistelSalt returns the salt prefix used in every round's PBKDF2 call.
// It is empty when the backup is extendable; otherwise it is "shamir"
// followed by the two-byte big-endian identifier.
func feistelSalt(extendable bool, identifier uint16) []byte {
	if extendable {
		return nil
	}
	return append([]byte(saltPrefix), byte(identifier>>8), byte(identifier))
}

func feistelRound(roundNum int, passphrase string, salt, r []byte, iterations, half int) []byte {
	password := append([]byte{byte(roundNum)}, []byte(passphrase)...)
	roundSalt := append(append([]byte{}, salt...), r...)
	return pbkdf2.Key(password, roundSalt, iterations, half, sha256.New)
}

// feistelCrypt runs the four-round Feistel network over secret, in either
// the forward (encrypt) or reverse (decrypt) round order.
func feistelCrypt(secret []byte, passphrase string, exponent int, salt []byte, decrypt bool) ([]byte, error) {
	if len(secret)%2 != 0 {
		return nil, sigilerr.ErrSecretOddLength
	}
	if !isPrintableASCII(passphrase) {
		return nil, sigilerr.ErrInvalidPassphrase
	}

	iterations, err := feistelIterations(exponent)
	if err != nil {
		return nil, err
	}

	half := len(secret) / 2
	l := append([]byte{}, secret[:half]...)
	r := append([]byte{}, secret[half:]...)

	rounds := [RoundCount]int{0, 1, 2, 3}
	if decrypt {
		rounds = [RoundCount]int{3, 2, 1, 0}
	}

	for _, round := range rounds {
		f := feistelRound(round, passphrase, salt, r, iterations, half)
		newR := make([]byte, half)
		for i := 0; i < half; i++ {
			newR[i] = l[i] ^ f[i]
		}
		l, r = r, newR
	}

	return append(r, l...), nil
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			return false
		}
	}
	return true
}
