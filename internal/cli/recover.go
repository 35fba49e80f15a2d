package cli

import (
	"encoding/hex"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/sigilcrypto"
	"github.com/mrz1836/sigil/internal/slip39"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	recoverShares     []string
	recoverPassphrase bool
)

// recoverCmd reassembles a master secret from SLIP-39 mnemonic shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover a master secret from SLIP-39 shares",
	Long: `Recover reassembles the original master secret from a sufficient set of
SLIP-39 mnemonic shares.

Shares can be passed with repeated --share flags, or entered interactively
if none are given.

Example:
  sigil recover --share "word word ... word" --share "word word ... word"
  sigil recover`,
	RunE: runRecover,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(recoverCmd)

	recoverCmd.Flags().StringArrayVar(&recoverShares, "share", nil, "a SLIP-39 mnemonic share (repeatable)")
	recoverCmd.Flags().BoolVar(&recoverPassphrase, "passphrase", false, "prompt for the SLIP-39 passphrase used at generation time")
}

func runRecover(cmd *cobra.Command, _ []string) error {
	mnemonics := recoverShares
	if len(mnemonics) == 0 {
		collected, err := collectMnemonicsInteractively()
		if err != nil {
			return err
		}
		mnemonics = collected
	}

	var passphrase []byte
	if recoverPassphrase {
		pw, err := promptPassword("SLIP-39 passphrase: ")
		if err != nil {
			return err
		}
		passphrase = pw
		defer sigilcrypto.ZeroBytes(passphrase)
	}

	secret, err := slip39.Recover(mnemonics, string(passphrase))
	if err != nil {
		return err
	}
	defer sigilcrypto.ZeroBytes(secret)

	displayRecoveredSecret(cmd, secret)
	return nil
}

// collectMnemonicsInteractively prompts for shares one at a time, asking
// after each one whether to continue.
func collectMnemonicsInteractively() ([]string, error) {
	var mnemonics []string
	for i := 1; ; i++ {
		mnemonic, err := promptMnemonic("Share " + strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		mnemonics = append(mnemonics, mnemonic)

		if !promptConfirmation("Enter another share?") {
			break
		}
	}
	return mnemonics, nil
}

// displayRecoveredSecret prints the recovered master secret as hex.
func displayRecoveredSecret(cmd *cobra.Command, secret []byte) {
	w := cmd.OutOrStdout()
	outln(w)
	outln(w, "===================================================================")
	outln(w, "                    RECOVERED MASTER SECRET")
	outln(w, "===================================================================")
	outln(w)
	out(w, "%s\n", hex.EncodeToString(secret))
	outln(w)
}
