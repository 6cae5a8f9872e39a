package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shardvault/shardvault/internal/fileutil"
	"github.com/shardvault/shardvault/internal/metrics"
	"github.com/shardvault/shardvault/internal/secure"
	"github.com/shardvault/shardvault/pkg/shardvault"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	combineInPaths []string
	combineOutPath string
)

// combineCmd reconstructs a secret from k or more shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine shares to reconstruct the original secret",
	Long: `Combine reads k or more share files (each in any supported text
encoding, auto-detected) and reconstructs the original secret. A passphrase
is prompted for automatically if the shares were created with --encrypt.

Example:
  shardvault combine --in shares/share-1-of-5.txt --in shares/share-2-of-5.txt --in shares/share-3-of-5.txt --out secret.txt`,
	RunE: runCombine,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringArrayVar(&combineInPaths, "in", nil, "path to a share file (repeatable, at least k required)")
	combineCmd.Flags().StringVar(&combineOutPath, "out", "", "path to write the reconstructed secret (required)")
}

func runCombine(_ *cobra.Command, _ []string) error {
	if len(combineInPaths) == 0 || combineOutPath == "" {
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "at least one --in and --out are required")
	}

	packets := make([]shardvault.SharePacket, 0, len(combineInPaths))
	for _, p := range combineInPaths {
		text, err := os.ReadFile(p) //nolint:gosec // G304: user-specified path is the intended input
		if err != nil {
			return fmt.Errorf("reading share file %s: %w", p, err)
		}

		pkt, err := shardvault.DecodePacketAuto(trimTrailingNewline(string(text)))
		if err != nil {
			return fmt.Errorf("decoding share file %s: %w", p, err)
		}
		metrics.Global.RecordDecode()
		packets = append(packets, pkt)
	}

	var passphrase []byte
	if packets[0].Params != nil {
		pass, err := promptPasswordFn("Enter passphrase: ")
		if err != nil {
			return err
		}
		defer secure.Zero(pass)
		passphrase = pass
	}

	secret, err := shardvault.CombineShares(packets, passphrase)
	metrics.Global.RecordCombine(err)
	if err != nil {
		return err
	}
	defer secure.Zero(secret)

	if err := fileutil.WriteAtomic(combineOutPath, secret, 0o600); err != nil {
		return fmt.Errorf("writing secret file: %w", err)
	}

	return nil
}

// trimTrailingNewline strips a single trailing newline, as written by split.
func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
