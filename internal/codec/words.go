package codec

import (
	"encoding/binary"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// wordList is the 2048-word dictionary C7 packs 11-bit indices against. It
// happens to be the same BIP39 English list C8 uses for its mnemonics, but
// C7 treats it purely as an 11-bit alphabet: no checksum word, no mnemonic
// validity rules, just CRC16 framing (spec §4.7).
var wordList = bip39.WordList

var wordIndex = func() map[string]int {
	m := make(map[string]int, len(wordList))
	for i, w := range wordList {
		m[w] = i
	}
	return m
}()

// EncodeWords frames payload as len(4,BE) ‖ payload ‖ crc16(2,BE), packs the
// framed bytes into 11-bit word indices (MSB-first, zero-padded on the
// right), and renders them as space-separated BIP39 English words (spec §4.7).
func EncodeWords(payload []byte) string {
	frame := make([]byte, 0, 4+len(payload)+2)
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(payload)))
	frame = append(frame, lenPrefix[:]...)
	frame = append(frame, payload...)

	crc := crc16CCITTFalse(frame)
	var crcBytes [2]byte
	binary.BigEndian.PutUint16(crcBytes[:], crc)
	frame = append(frame, crcBytes[:]...)

	indices := packBitsInto11BitGroups(frame)

	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wordList[idx]
	}
	return strings.Join(words, " ")
}

// DecodeWords reverses EncodeWords: unpacks 11-bit groups back into bytes,
// reads the length prefix, verifies the CRC, and returns payload.
func DecodeWords(text string) ([]byte, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "empty mnemo-words input")
	}

	indices := make([]int, len(tokens))
	for i, tok := range tokens {
		idx, ok := wordIndex[strings.ToLower(tok)]
		if !ok {
			return nil, shardvaulterr.Newf(shardvaulterr.KindEncoding, "unknown word %q", tok)
		}
		indices[i] = idx
	}

	frame := unpack11BitGroupsToBytes(indices)
	if len(frame) < 6 {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "mnemo-words frame too short")
	}

	payloadLen := binary.BigEndian.Uint32(frame[0:4])
	if uint64(payloadLen) > uint64(len(frame)-6) {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "mnemo-words length prefix overflow")
	}

	payload := frame[4 : 4+payloadLen]
	gotCRC := binary.BigEndian.Uint16(frame[4+payloadLen : 6+payloadLen])
	wantCRC := crc16CCITTFalse(frame[:4+payloadLen])
	if gotCRC != wantCRC {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "mnemo-words crc mismatch")
	}

	// Trailing bytes beyond len‖payload‖crc are zero pad bits from 11-bit
	// group rounding; they carry no data and are discarded.
	out := make([]byte, payloadLen)
	copy(out, payload)
	return out, nil
}

// packBitsInto11BitGroups packs data big-endian-bit-order into 11-bit
// groups, zero-padding the final group on the right.
func packBitsInto11BitGroups(data []byte) []int {
	var bitBuf uint32
	var bitCount uint
	var groups []int

	for _, b := range data {
		bitBuf = (bitBuf << 8) | uint32(b)
		bitCount += 8
		for bitCount >= 11 {
			bitCount -= 11
			groups = append(groups, int((bitBuf>>bitCount)&0x7FF))
		}
	}
	if bitCount > 0 {
		groups = append(groups, int((bitBuf<<(11-bitCount))&0x7FF))
	}
	return groups
}

// unpack11BitGroupsToBytes reverses packBitsInto11BitGroups, dropping any
// trailing bits that don't fill a whole byte.
func unpack11BitGroupsToBytes(groups []int) []byte {
	var bitBuf uint64
	var bitCount uint
	var out []byte

	for _, g := range groups {
		bitBuf = (bitBuf << 11) | uint64(g)
		bitCount += 11
		for bitCount >= 8 {
			bitCount -= 8
			out = append(out, byte((bitBuf>>bitCount)&0xFF))
		}
	}
	return out
}
