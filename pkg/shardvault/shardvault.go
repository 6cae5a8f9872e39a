// Package shardvault is the public API surface (spec §4.9, C9): splitting
// a secret into threshold shares, combining them back, and encoding or
// decoding a single share as text. Everything underneath (finite-field
// arithmetic, the crypto envelope, the integrity-tagged pipeline, the wire
// format, the text codecs) is an internal implementation detail.
package shardvault

import (
	"github.com/shardvault/shardvault/internal/codec"
	"github.com/shardvault/shardvault/internal/packet"
	"github.com/shardvault/shardvault/internal/pipeline"
	"github.com/shardvault/shardvault/internal/sharecrypto"
	"github.com/shardvault/shardvault/internal/shamir"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// Encoding re-exports the codec package's encoding tags so callers don't
// need to import internal/codec directly.
type Encoding = codec.Encoding

// The four supported text encodings (spec §4.6-4.8).
const (
	Base58Check Encoding = codec.Base58Check
	Base64URL   Encoding = codec.Base64URL
	Words       Encoding = codec.Words
	BIP39Frames Encoding = codec.BIP39Frames
)

// SharePacket is one decoded share: everything needed to either re-encode
// it as text or feed it into CombineShares alongside its siblings.
type SharePacket = packet.SharePacket

// SplitSecret splits secret into n packets, k of which are required to
// recover it, optionally encrypting it under passphrase first (spec §4.4).
// passphrase may be nil to skip encryption.
func SplitSecret(secret []byte, k, n int, passphrase []byte) ([]SharePacket, error) {
	shares, params, err := pipeline.Split(secret, k, n, passphrase)
	if err != nil {
		return nil, err
	}

	packets := make([]SharePacket, len(shares))
	for i, s := range shares {
		packets[i] = packet.SharePacket{
			Version: packet.VersionCurrent,
			K:       byte(s.K),
			N:       byte(s.N),
			X:       s.X,
			SetID:   s.SetID,
			Params:  params,
			Payload: s.Y,
		}
	}
	return packets, nil
}

// CombineShares recovers the original secret from at least k of the
// packets returned by SplitSecret. passphrase is required if the set was
// encrypted, and ignored otherwise.
func CombineShares(packets []SharePacket, passphrase []byte) ([]byte, error) {
	if err := packet.ValidateSiblings(packets); err != nil {
		return nil, err
	}

	shares := make([]shamir.RawShare, len(packets))
	for i, p := range packets {
		shares[i] = shamir.RawShare{
			SetID: p.SetID,
			K:     int(p.K),
			N:     int(p.N),
			X:     p.X,
			Y:     p.Payload,
		}
	}

	var params *sharecrypto.Params
	if len(packets) > 0 {
		params = packets[0].Params
	}
	return pipeline.Combine(shares, params, passphrase)
}

// EncodePacket renders pkt as text in the given encoding.
func EncodePacket(pkt SharePacket, enc Encoding) (string, error) {
	data, err := packet.Encode(pkt)
	if err != nil {
		return "", err
	}
	return codec.Encode(data, enc)
}

// DecodePacket parses text (in the given encoding) back into a SharePacket.
func DecodePacket(text string, enc Encoding) (SharePacket, error) {
	data, err := codec.Decode(text, enc)
	if err != nil {
		return SharePacket{}, err
	}
	return packet.Decode(data)
}

// DecodePacketAuto is DecodePacket with the encoding auto-detected (spec
// §4.9).
func DecodePacketAuto(text string) (SharePacket, error) {
	data, err := codec.DecodeAuto(text)
	if err != nil {
		return SharePacket{}, err
	}
	return packet.Decode(data)
}

// OfKind is re-exported so callers can branch on failure category (spec
// §7) through this package; the Kind constants themselves live in
// pkg/shardvaulterr.
var (
	OfKind = shardvaulterr.OfKind
)
