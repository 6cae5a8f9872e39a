package cli

import (
	"fmt"
	"os"

	"github.com/shardvault/shardvault/pkg/shardvault"
)

// encodePacketFn is an indirection over shardvault.EncodePacket, swappable in tests.
//
//nolint:gochecknoglobals // Test seam
var encodePacketFn = shardvault.EncodePacket

// readSharePacket reads a share file and decodes it, using the given encoding
// name if non-empty, or auto-detection otherwise.
func readSharePacket(path, encodingName string) (shardvault.SharePacket, error) {
	text, err := os.ReadFile(path) //nolint:gosec // G304: user-specified path is the intended input
	if err != nil {
		return shardvault.SharePacket{}, fmt.Errorf("reading share file %s: %w", path, err)
	}

	trimmed := trimTrailingNewline(string(text))

	if encodingName == "" {
		pkt, decodeErr := shardvault.DecodePacketAuto(trimmed)
		if decodeErr != nil {
			return shardvault.SharePacket{}, fmt.Errorf("decoding share file %s: %w", path, decodeErr)
		}
		return pkt, nil
	}

	enc, err := parseEncoding(encodingName)
	if err != nil {
		return shardvault.SharePacket{}, err
	}
	pkt, err := shardvault.DecodePacket(trimmed, enc)
	if err != nil {
		return shardvault.SharePacket{}, fmt.Errorf("decoding share file %s: %w", path, err)
	}
	return pkt, nil
}
