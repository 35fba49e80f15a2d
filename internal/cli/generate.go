package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/sigil/internal/output"
	"github.com/mrz1836/sigil/internal/sigilcrypto"
	"github.com/mrz1836/sigil/internal/slip39"
	sigilerr "github.com/mrz1836/sigil/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	generateGroups         []string
	generateGroupThreshold int
	generateBits           int
	generateSecretHex      string
	generatePassphrase     bool
	generateExtendable     bool
	generateIterationExp   int
	generateQR             bool
)

// generateCmd splits a master secret into SLIP-39 mnemonic shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SLIP-39 shares for a new or existing secret",
	Long: `Generate splits a master secret into SLIP-39 mnemonic shares.

Shares are organized into groups. Each group has a member threshold (how
many of that group's shares are needed) and a member count (how many
shares the group holds). The --groups flag takes one or more MofN
specifications, one per group. The overall --group-threshold is how many
groups must each meet their own threshold before the secret can be
recovered.

With no --secret-hex, a fresh secret of --bits bits (256 by default) is
generated.

Example:
  sigil generate --groups 3of5
  sigil generate --groups 2of3 --groups 3of5 --group-threshold 1
  sigil generate --groups 1of1 --bits 128 --passphrase`,
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceVar(&generateGroups, "groups", []string{"1of1"},
		"member group specifications, each MofN (threshold of count)")
	generateCmd.Flags().IntVar(&generateGroupThreshold, "group-threshold", 1,
		"number of groups that must each meet their threshold")
	generateCmd.Flags().IntVar(&generateBits, "bits", 256, "master secret length in bits (must be a multiple of 16, at least 128)")
	generateCmd.Flags().StringVar(&generateSecretHex, "secret-hex", "", "existing secret to split, as hex (overrides --bits)")
	generateCmd.Flags().BoolVar(&generatePassphrase, "passphrase", false, "prompt for a SLIP-39 passphrase")
	generateCmd.Flags().BoolVar(&generateExtendable, "extendable", slip39.DefaultExtendable, "use the extendable backup flag")
	generateCmd.Flags().IntVar(&generateIterationExp, "iteration-exponent", slip39.DefaultIterationExponent,
		"PBKDF2 iteration exponent (0-16)")
	generateCmd.Flags().BoolVar(&generateQR, "qr", false, "render each share as a QR code")
}

// parseGroupSpecs parses a slice of "MofN" strings into MemberGroups.
func parseGroupSpecs(specs []string) ([]slip39.MemberGroup, error) {
	groups := make([]slip39.MemberGroup, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, "of", 2)
		if len(parts) != 2 {
			return nil, sigilerr.WithSuggestion(
				sigilerr.ErrInvalidInput,
				fmt.Sprintf("group spec %q must look like MofN, e.g. 3of5", spec),
			)
		}

		threshold, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, fmt.Sprintf("invalid threshold in %q", spec))
		}

		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, fmt.Sprintf("invalid count in %q", spec))
		}

		groups = append(groups, slip39.MemberGroup{Threshold: threshold, Count: count})
	}
	return groups, nil
}

func resolveMasterSecret() ([]byte, error) {
	if generateSecretHex != "" {
		secret, err := hex.DecodeString(generateSecretHex)
		if err != nil {
			return nil, sigilerr.WithSuggestion(sigilerr.ErrInvalidInput, "secret-hex must be valid hexadecimal")
		}
		return secret, nil
	}

	if generateBits%16 != 0 || generateBits < 128 {
		return nil, sigilerr.ErrSecretTooShort
	}

	return sigilcrypto.RandomBytes(generateBits / 8)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	groups, err := parseGroupSpecs(generateGroups)
	if err != nil {
		return err
	}

	secret, err := resolveMasterSecret()
	if err != nil {
		return err
	}
	defer sigilcrypto.ZeroBytes(secret)

	if cfg != nil {
		defaults := cfg.GetSLIP39()
		if !cmd.Flags().Changed("group-threshold") {
			generateGroupThreshold = defaults.GroupThreshold
		}
		if !cmd.Flags().Changed("iteration-exponent") {
			generateIterationExp = defaults.IterationExponent
		}
		if !cmd.Flags().Changed("extendable") {
			generateExtendable = defaults.Extendable
		}
	}

	var passphrase []byte
	if generatePassphrase {
		passphrase, err = promptNewPassphrase()
		if err != nil {
			return err
		}
		defer sigilcrypto.ZeroBytes(passphrase)
	}

	mnemonicsByGroup, err := slip39.Generate(secret, slip39.GenerateOptions{
		Groups:            groups,
		GroupThreshold:    generateGroupThreshold,
		Passphrase:        string(passphrase),
		IterationExponent: generateIterationExp,
		Extendable:        generateExtendable,
	})
	if err != nil {
		return err
	}

	displayShares(cmd, mnemonicsByGroup)
	return nil
}

// displayShares prints the generated mnemonics, grouped by member group.
func displayShares(cmd *cobra.Command, mnemonicsByGroup [][]string) {
	w := cmd.OutOrStdout()
	outln(w)
	outln(w, "===================================================================")
	outln(w, "                    SLIP-39 RECOVERY SHARES")
	outln(w, "===================================================================")
	outln(w)
	outln(w, "Write down each share and store it in a separate, secure location.")
	outln(w)

	for g, mnemonics := range mnemonicsByGroup {
		out(w, "Group %d (%d shares):\n", g+1, len(mnemonics))
		for m, mnemonic := range mnemonics {
			out(w, "  Member %d: %s\n", m+1, mnemonic)
			if generateQR && output.CanRenderQR(w) {
				if err := output.RenderQR(w, mnemonic, output.DefaultQRConfig()); err != nil {
					out(cmd.OutOrStderr(), "  (QR render failed: %v)\n", err)
				}
			}
		}
		outln(w)
	}
}
