// Package packet implements the versioned binary SharePacket wire format
// (spec §4.5): the interop surface any two implementations must agree on
// bit-exactly.
package packet

import (
	"encoding/binary"

	"github.com/shardvault/shardvault/internal/sharecrypto"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// Magic is the 4-byte identifier at the start of every packet.
var Magic = [4]byte{'S', 'M', 'N', '1'}

const (
	// VersionLegacy is the unencrypted-only wire format kept for decoding
	// shares produced by older implementations.
	VersionLegacy = 1
	// VersionCurrent is always used for new encodes.
	VersionCurrent = 2

	flagEncrypted = 1 << 0

	fixedHeaderLen = 25
	setIDOffset    = 9
	cryptoBlockLen = sharecrypto.SaltLen + sharecrypto.NonceLen + 4 + 4 + 4
)

// SharePacket is the decoded form of one share (spec §4 "SharePacket").
type SharePacket struct {
	Version byte
	K       byte
	N       byte
	X       byte
	SetID   [16]byte
	Params  *sharecrypto.Params // nil when the share set is unencrypted
	Payload []byte
}

// Encode serializes p as a version-2 SMN1 packet. Encode never emits
// version 1; that format is decode-only (spec §4.5).
func Encode(p SharePacket) ([]byte, error) {
	if p.X == 0 {
		return nil, shardvaulterr.New(shardvaulterr.KindInvalidX, "share x coordinate must be in [1,255]")
	}

	flags := byte(0)
	if p.Params != nil {
		flags |= flagEncrypted
	}

	buf := make([]byte, 0, fixedHeaderLen+cryptoBlockLen+4+len(p.Payload))
	buf = append(buf, Magic[:]...)
	buf = append(buf, VersionCurrent, flags, p.K, p.N, p.X)
	buf = append(buf, p.SetID[:]...)

	if p.Params != nil {
		buf = append(buf, p.Params.Salt[:]...)
		buf = append(buf, p.Params.Nonce[:]...)
		buf = appendUint32(buf, p.Params.MemKiB)
		buf = appendUint32(buf, p.Params.Time)
		buf = appendUint32(buf, p.Params.Parallelism)
	}

	buf = appendUint32(buf, uint32(len(p.Payload)))
	buf = append(buf, p.Payload...)
	return buf, nil
}

// Decode parses a binary SharePacket, accepting both version 1 (legacy,
// unencrypted only) and version 2.
func Decode(data []byte) (SharePacket, error) {
	if len(data) < fixedHeaderLen {
		return SharePacket{}, invalidPacket("truncated header")
	}
	if [4]byte(data[0:4]) != Magic {
		return SharePacket{}, invalidPacket("bad magic")
	}

	version := data[4]
	flags := data[5]
	if version != VersionLegacy && version != VersionCurrent {
		return SharePacket{}, invalidPacket("unsupported version")
	}
	if version == VersionLegacy && flags&flagEncrypted != 0 {
		return SharePacket{}, invalidPacket("version 1 cannot be encrypted")
	}

	p := SharePacket{
		Version: version,
		K:       data[6],
		N:       data[7],
		X:       data[8],
	}
	copy(p.SetID[:], data[setIDOffset:setIDOffset+16])

	rest := data[fixedHeaderLen:]
	encrypted := version == VersionCurrent && flags&flagEncrypted != 0
	if encrypted {
		if len(rest) < cryptoBlockLen {
			return SharePacket{}, invalidPacket("truncated crypto params")
		}
		var params sharecrypto.Params
		copy(params.Salt[:], rest[0:16])
		copy(params.Nonce[:], rest[16:28])
		params.MemKiB = binary.BigEndian.Uint32(rest[28:32])
		params.Time = binary.BigEndian.Uint32(rest[32:36])
		params.Parallelism = binary.BigEndian.Uint32(rest[36:40])
		p.Params = &params
		rest = rest[cryptoBlockLen:]
	}

	if len(rest) < 4 {
		return SharePacket{}, invalidPacket("truncated payload length")
	}
	payloadLen := binary.BigEndian.Uint32(rest[0:4])
	rest = rest[4:]
	if uint64(payloadLen) > uint64(len(rest)) {
		return SharePacket{}, invalidPacket("payload length overflow")
	}
	p.Payload = append([]byte(nil), rest[:payloadLen]...)
	return p, nil
}

// TotalLen parses just enough of data's header to compute the expected
// total packet length, without requiring the payload to be fully present
// yet (spec §4.5 binary_total_len; used by the multi-frame codecs to know
// when they have reassembled enough bytes).
func TotalLen(data []byte) (int, error) {
	if len(data) < fixedHeaderLen {
		return 0, invalidPacket("truncated header")
	}
	if [4]byte(data[0:4]) != Magic {
		return 0, invalidPacket("bad magic")
	}
	version := data[4]
	flags := data[5]
	if version != VersionLegacy && version != VersionCurrent {
		return 0, invalidPacket("unsupported version")
	}

	total := fixedHeaderLen
	if version == VersionCurrent && flags&flagEncrypted != 0 {
		total += cryptoBlockLen
	}
	if len(data) < total+4 {
		return 0, invalidPacket("truncated payload length")
	}
	payloadLen := binary.BigEndian.Uint32(data[total : total+4])
	total += 4 + int(payloadLen)
	return total, nil
}

// ValidateSiblings checks the "set consistency at combine" invariant (spec
// §4, "Set consistency (at combine)"): every packet must agree on SetID, K,
// N, payload length, and crypto params, with distinct nonzero X values.
func ValidateSiblings(packets []SharePacket) error {
	if len(packets) == 0 {
		return shardvaulterr.New(shardvaulterr.KindNotEnoughShares, "no packets provided")
	}

	first := packets[0]
	seenX := make(map[byte]bool, len(packets))
	for _, p := range packets {
		if p.X == 0 {
			return shardvaulterr.New(shardvaulterr.KindInvalidX, "share x coordinate must be in [1,255]")
		}
		if seenX[p.X] {
			return shardvaulterr.New(shardvaulterr.KindDuplicateX, "duplicate share x coordinate")
		}
		seenX[p.X] = true

		if p.SetID != first.SetID || p.K != first.K || p.N != first.N || len(p.Payload) != len(first.Payload) {
			return shardvaulterr.New(shardvaulterr.KindInconsistentMetadata, "shares disagree on set id, k, n, or payload length")
		}
		if !sharecrypto.Equal(p.Params, first.Params) {
			return shardvaulterr.New(shardvaulterr.KindCryptoParamsMismatch, "shares disagree on crypto params")
		}
	}
	return nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func invalidPacket(msg string) error {
	return shardvaulterr.New(shardvaulterr.KindInvalidPacket, msg)
}
