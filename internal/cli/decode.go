package cli

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/shardvault/shardvault/internal/metrics"
	"github.com/shardvault/shardvault/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var decodeSourceEncoding string

// decodeCmd shows metadata about a share file without reconstructing anything.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var decodeCmd = &cobra.Command{
	Use:   "decode <share-file>",
	Short: "Show metadata about a share without combining",
	Long: `Decode parses a share file and reports its k/n threshold, index,
set identifier, and whether it is protected by a passphrase. It does not
reconstruct the secret; use combine for that.

Example:
  shardvault decode shares/share-1-of-5.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeSourceEncoding, "from", "", "source encoding (default: auto-detect)")
}

type decodeInfo struct {
	K         int    `json:"k"`
	N         int    `json:"n"`
	X         int    `json:"x"`
	SetID     string `json:"set_id"`
	Encrypted bool   `json:"encrypted"`
	Version   int    `json:"version"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	pkt, err := readSharePacket(args[0], decodeSourceEncoding)
	if err != nil {
		return err
	}
	metrics.Global.RecordDecode()

	info := decodeInfo{
		K:         int(pkt.K),
		N:         int(pkt.N),
		X:         int(pkt.X),
		SetID:     hex.EncodeToString(pkt.SetID[:]),
		Encrypted: pkt.Params != nil,
		Version:   int(pkt.Version),
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return writeJSON(w, info)
	}

	out(w, "share %d of %d (k=%d required)\n", info.X, info.N, info.K)
	out(w, "  set_id:    %s\n", info.SetID)
	out(w, "  encrypted: %t\n", info.Encrypted)
	out(w, "  version:   %d\n", info.Version)
	return nil
}
