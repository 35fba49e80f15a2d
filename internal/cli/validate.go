package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/slip39"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

// validateCmd checks a single SLIP-39 mnemonic for validity.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var validateCmd = &cobra.Command{
	Use:   "validate <mnemonic>",
	Short: "Validate a single SLIP-39 mnemonic share",
	Long: `Validate checks that a single SLIP-39 mnemonic share has a recognized
word count, decodes to a valid metadata layout, and passes its RS1024
checksum. It does not check the share against any others, so it cannot by
itself confirm that the share belongs to a recoverable set.

Example:
  sigil validate "word word ... word"`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	mnemonic := args[0]
	w := cmd.OutOrStdout()

	if !slip39.ValidateMnemonic(mnemonic) {
		return sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "mnemonic failed checksum or layout validation")
	}

	share, err := slip39.DecodeMnemonic(mnemonic)
	if err != nil {
		return err
	}

	outln(w, "Mnemonic is valid.")
	out(w, "  Identifier:       %d\n", share.Identifier)
	out(w, "  Extendable:       %t\n", share.Extendable)
	out(w, "  Group:            %d of %d (threshold %d)\n", share.GroupIndex+1, share.GroupCount, share.GroupThreshold)
	out(w, "  Member:           %d (threshold %d)\n", share.MemberIndex+1, share.MemberThreshold)
	out(w, "  Iteration exp:    %d\n", share.IterationExponent)

	return nil
}
