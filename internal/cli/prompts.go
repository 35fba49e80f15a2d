package cli

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/sigil/internal/sigilcrypto"
	"github.com/mrz1836/sigil/internal/slip39"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// promptNewPassphrase prompts for a new SLIP-39 passphrase with confirmation.
// An empty passphrase is accepted (no confirmation is required in that case).
// The caller is responsible for zeroing the returned bytes after use.
func promptNewPassphrase() ([]byte, error) {
	outln(os.Stderr, "SLIP-39 passphrase (optional extra security layer):")
	outln(os.Stderr, "WARNING: if you lose this passphrase, the shares alone cannot recover the secret.")

	passphrase, err := promptPassword("Enter passphrase (leave blank for none): ")
	if err != nil {
		return nil, err
	}

	if len(passphrase) == 0 {
		return passphrase, nil
	}

	confirm, err := promptPassword("Confirm passphrase: ")
	if err != nil {
		sigilcrypto.ZeroBytes(passphrase)
		return nil, err
	}
	defer sigilcrypto.ZeroBytes(confirm)

	if string(passphrase) != string(confirm) {
		sigilcrypto.ZeroBytes(passphrase)
		return nil, sigilerr.WithSuggestion(
			sigilerr.ErrInvalidInput,
			"passphrases do not match",
		)
	}

	return passphrase, nil
}

// promptConfirmation asks the user to confirm an irreversible action.
func promptConfirmation(question string) bool {
	out(os.Stderr, "\n%s [y/N]: ", question)

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// promptMnemonic prompts for a single SLIP-39 mnemonic share, reading
// whitespace-separated words until they form a valid mnemonic. If the input
// ends first, the words read so far are returned without validation.
func promptMnemonic(label string) (string, error) {
	out(os.Stderr, "%s: ", label)

	var words []string
	for {
		var word string
		n, err := fmt.Scan(&word)
		if n == 0 || err != nil {
			break
		}
		words = append(words, word)

		mnemonic := strings.Join(words, " ")
		if slip39.ValidateMnemonic(mnemonic) {
			return mnemonic, nil
		}
	}

	if len(words) == 0 {
		return "", sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "no mnemonic provided")
	}
	return strings.Join(words, " "), nil
}
