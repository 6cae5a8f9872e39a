// Package codec implements the four text encodings a SharePacket can be
// rendered as (spec §4.6-4.9): Base58Check, Base64URL, an 11-bit
// word-packed encoding over the BIP39 word list, and 24-word BIP39 "frame"
// mnemonics. It also implements the auto-detection heuristic callers like
// the CLI use when the encoding of a pasted share isn't known up front.
package codec

import (
	"strings"

	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// Encoding identifies one of the four text encodings a packet can round
// trip through.
type Encoding string

const (
	Base58Check Encoding = "base58check"
	Base64URL   Encoding = "base64url"
	Words       Encoding = "words"
	BIP39Frames Encoding = "bip39frames"
)

// Encode renders payload (typically a packet.Encode result) as text in the
// given encoding.
func Encode(payload []byte, enc Encoding) (string, error) {
	switch enc {
	case Base58Check:
		return EncodeBase58Check(payload), nil
	case Base64URL:
		return EncodeBase64URL(payload), nil
	case Words:
		return EncodeWords(payload), nil
	case BIP39Frames:
		return EncodeBIP39Frames(payload)
	default:
		return "", shardvaulterr.Newf(shardvaulterr.KindEncoding, "unknown encoding %q", enc)
	}
}

// Decode reverses Encode for a known encoding.
func Decode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case Base58Check:
		return DecodeBase58Check(text)
	case Base64URL:
		return DecodeBase64URL(text)
	case Words:
		return DecodeWords(text)
	case BIP39Frames:
		return DecodeBIP39Frames(text)
	default:
		return nil, shardvaulterr.Newf(shardvaulterr.KindEncoding, "unknown encoding %q", enc)
	}
}

// Detect guesses an encoding from text shape alone (spec §4.9): a `/`
// anywhere means BIP39 frames; multiple whitespace-separated tokens means
// mnemo-words; otherwise try Base64URL then Base58Check.
func Detect(text string) Encoding {
	if strings.Contains(text, "/") {
		return BIP39Frames
	}
	if len(strings.Fields(text)) > 1 {
		return Words
	}
	if _, err := DecodeBase64URL(text); err == nil {
		return Base64URL
	}
	return Base58Check
}

// DecodeAuto applies Detect and then Decode, falling through Base64URL to
// Base58Check if the first guess fails to parse (spec §4.9 "else fail").
func DecodeAuto(text string) ([]byte, error) {
	enc := Detect(text)
	data, err := Decode(text, enc)
	if err == nil {
		return data, nil
	}
	if enc == Base64URL {
		if data, err2 := DecodeBase58Check(text); err2 == nil {
			return data, nil
		}
	}
	return nil, shardvaulterr.Wrap(shardvaulterr.KindEncoding, err, "auto-detect decode failed")
}
