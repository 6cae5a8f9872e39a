package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shardvault/shardvault/internal/fileutil"
	"github.com/shardvault/shardvault/internal/metrics"
	"github.com/shardvault/shardvault/internal/secure"
	"github.com/shardvault/shardvault/pkg/shardvault"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	splitK          int
	splitN          int
	splitInPath     string
	splitOutDir     string
	splitEncoding   string
	splitEncrypt    bool
	splitFilePrefix = "share"
)

// splitCmd splits a secret into threshold shares.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a secret into threshold shares",
	Long: `Split reads a secret and divides it into n shares such that any k of
them reconstruct the original. With --encrypt, the secret is additionally
protected under a passphrase before splitting.

Example:
  shardvault split --k 3 --n 5 --in secret.txt --out shares/
  shardvault split --k 2 --n 3 --in secret.txt --out shares/ --encrypt`,
	RunE: runSplit,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVar(&splitK, "k", 0, "threshold: shares required to reconstruct (default: config split.default_k)")
	splitCmd.Flags().IntVar(&splitN, "n", 0, "total shares to produce (default: config split.default_n)")
	splitCmd.Flags().StringVar(&splitInPath, "in", "", "path to the secret file (required)")
	splitCmd.Flags().StringVar(&splitOutDir, "out", "", "directory to write share files into (required)")
	splitCmd.Flags().StringVar(&splitEncoding, "encoding", "", "text encoding: base58check, base64url, words, bip39frames (default: config split.default_encoding)")
	splitCmd.Flags().BoolVar(&splitEncrypt, "encrypt", false, "protect the secret with a passphrase before splitting")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	k, n := splitK, splitN
	if k == 0 {
		k = cfg.Split.DefaultK
	}
	if n == 0 {
		n = cfg.Split.DefaultN
	}

	encodingName := splitEncoding
	if encodingName == "" {
		encodingName = cfg.Split.DefaultEncoding
	}
	enc, err := parseEncoding(encodingName)
	if err != nil {
		return err
	}

	if splitInPath == "" || splitOutDir == "" {
		return shardvaulterr.New(shardvaulterr.KindInvalidInput, "--in and --out are required")
	}

	secretBytes, err := os.ReadFile(splitInPath) //nolint:gosec // G304: user-specified path is the intended input
	if err != nil {
		return fmt.Errorf("reading secret file: %w", err)
	}
	secretBuf := secure.FromSlice(secretBytes)
	defer secretBuf.Destroy()

	var passphrase []byte
	if splitEncrypt {
		pass, promptErr := promptNewPassphraseFn()
		if promptErr != nil {
			metrics.Global.RecordSplit(promptErr)
			return promptErr
		}
		defer secure.Zero(pass)
		passphrase = pass
	}

	packets, err := shardvault.SplitSecret(secretBuf.Bytes(), k, n, passphrase)
	metrics.Global.RecordSplit(err)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(splitOutDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	w := cmd.OutOrStdout()
	for i, pkt := range packets {
		text, encErr := shardvault.EncodePacket(pkt, enc)
		if encErr != nil {
			return encErr
		}
		metrics.Global.RecordEncode()

		sharePath := filepath.Join(splitOutDir, fmt.Sprintf("%s-%d-of-%d.txt", splitFilePrefix, i+1, n))
		if writeErr := fileutil.WriteAtomic(sharePath, []byte(text+"\n"), 0o600); writeErr != nil {
			return fmt.Errorf("writing share file: %w", writeErr)
		}
		out(w, "Wrote %s\n", sharePath)
	}

	outln(w)
	out(w, "Split into %d shares, %d required to reconstruct.\n", n, k)
	return nil
}

// parseEncoding maps a CLI encoding name to the codec's Encoding type.
func parseEncoding(name string) (shardvault.Encoding, error) {
	switch name {
	case "base58check":
		return shardvault.Base58Check, nil
	case "base64url":
		return shardvault.Base64URL, nil
	case "words":
		return shardvault.Words, nil
	case "bip39frames":
		return shardvault.BIP39Frames, nil
	default:
		return "", shardvaulterr.WithDetails(
			shardvaulterr.New(shardvaulterr.KindInvalidInput, "unknown encoding"),
			map[string]string{"encoding": name},
		)
	}
}
