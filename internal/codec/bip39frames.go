package codec

import (
	"encoding/binary"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/shardvault/shardvault/internal/packet"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

const (
	chunkLen   = 28
	entropyLen = 32 // frame_index(2) + frame_count(2) + chunk(28)
	frameSep   = " / "
)

// EncodeBIP39Frames splits data into 28-byte chunks and renders each as a
// 24-word BIP39 mnemonic carrying (frame_index, frame_count) in its first 4
// entropy bytes (spec §4.8).
func EncodeBIP39Frames(data []byte) (string, error) {
	count := (len(data) + chunkLen - 1) / chunkLen
	if count == 0 {
		count = 1
	}

	phrases := make([]string, count)
	for i := 0; i < count; i++ {
		var entropy [entropyLen]byte
		binary.BigEndian.PutUint16(entropy[0:2], uint16(i))
		binary.BigEndian.PutUint16(entropy[2:4], uint16(count))

		start := i * chunkLen
		end := start + chunkLen
		if end > len(data) {
			end = len(data)
		}
		copy(entropy[4:], data[start:end])

		phrase, err := bip39.NewMnemonic(entropy[:])
		if err != nil {
			return "", shardvaulterr.Wrap(shardvaulterr.KindEncoding, err, "generate bip39 frame")
		}
		phrases[i] = phrase
	}
	return strings.Join(phrases, frameSep), nil
}

// DecodeBIP39Frames reverses EncodeBIP39Frames: validates and parses every
// frame, reassembles them by frame_index, and trims to the packet's true
// length per binary_total_len, rejecting nonzero trailing pad bytes.
func DecodeBIP39Frames(text string) ([]byte, error) {
	rawFrames := strings.Split(text, "/")
	if len(rawFrames) == 0 {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "empty bip39 frame input")
	}

	type slot struct {
		index int
		chunk []byte
	}
	slots := make(map[int]slot, len(rawFrames))
	frameCount := -1

	for _, raw := range rawFrames {
		phrase := strings.ToLower(strings.TrimSpace(raw))
		if phrase == "" {
			continue
		}
		if !bip39.IsMnemonicValid(phrase) {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "invalid bip39 frame phrase")
		}
		entropy, err := bip39.EntropyFromMnemonic(phrase)
		if err != nil || len(entropy) != entropyLen {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "invalid bip39 frame entropy")
		}

		idx := int(binary.BigEndian.Uint16(entropy[0:2]))
		cnt := int(binary.BigEndian.Uint16(entropy[2:4]))
		if frameCount == -1 {
			frameCount = cnt
		} else if cnt != frameCount {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "bip39 frames disagree on frame_count")
		}

		if _, dup := slots[idx]; dup {
			return nil, shardvaulterr.Newf(shardvaulterr.KindEncoding, "duplicate bip39 frame index %d", idx)
		}
		chunk := make([]byte, chunkLen)
		copy(chunk, entropy[4:])
		slots[idx] = slot{index: idx, chunk: chunk}
	}

	if frameCount <= 0 {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "no valid bip39 frames found")
	}
	if len(slots) != frameCount {
		return nil, shardvaulterr.Newf(shardvaulterr.KindEncoding, "expected %d bip39 frames, got %d", frameCount, len(slots))
	}

	ordered := make([]slot, 0, frameCount)
	for _, s := range slots {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].index < ordered[j].index })

	assembled := make([]byte, 0, frameCount*chunkLen)
	for i, s := range ordered {
		if s.index != i {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "missing bip39 frame index")
		}
		assembled = append(assembled, s.chunk...)
	}

	total, err := packet.TotalLen(assembled)
	if err != nil {
		return nil, shardvaulterr.Wrap(shardvaulterr.KindEncoding, err, "parse packet header from reassembled frames")
	}
	if total > len(assembled) {
		return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "reassembled bip39 frames shorter than packet")
	}
	for _, b := range assembled[total:] {
		if b != 0 {
			return nil, shardvaulterr.New(shardvaulterr.KindEncoding, "nonzero trailing pad bytes")
		}
	}
	return assembled[:total], nil
}
