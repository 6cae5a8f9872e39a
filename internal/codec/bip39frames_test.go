package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardvault/shardvault/internal/codec"
	"github.com/shardvault/shardvault/internal/packet"
)

func samplePacketBytes(t *testing.T, payloadLen int) []byte {
	t.Helper()
	payload := make([]byte, payloadLen)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	p := packet.SharePacket{K: 2, N: 3, X: 1, Payload: payload}
	data, err := packet.Encode(p)
	require.NoError(t, err)
	return data
}

func TestBIP39Frames_RoundTripTwoFrames(t *testing.T) {
	// 25-byte header + 4-byte length + 10-byte payload = 39 bytes, which is
	// two 28-byte chunks. No packet fits a single frame: even an empty
	// payload gives 29 bytes.
	data := samplePacketBytes(t, 10)

	phrase, err := codec.EncodeBIP39Frames(data)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(phrase, " / "))

	decoded, err := codec.DecodeBIP39Frames(phrase)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBIP39Frames_RoundTripMultiFrame(t *testing.T) {
	// A large enough payload to span several 28-byte chunks, per spec §8's
	// 200-byte multi-frame scenario.
	data := samplePacketBytes(t, 200)

	phrase, err := codec.EncodeBIP39Frames(data)
	require.NoError(t, err)
	assert.True(t, strings.Contains(phrase, " / "))

	decoded, err := codec.DecodeBIP39Frames(phrase)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBIP39Frames_DecodeAcceptsMixedCase(t *testing.T) {
	data := samplePacketBytes(t, 10)
	phrase, err := codec.EncodeBIP39Frames(data)
	require.NoError(t, err)

	upper := strings.ToUpper(phrase)
	decoded, err := codec.DecodeBIP39Frames(upper)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBIP39Frames_DecodeRejectsMissingFrame(t *testing.T) {
	data := samplePacketBytes(t, 200)
	phrase, err := codec.EncodeBIP39Frames(data)
	require.NoError(t, err)

	frames := strings.Split(phrase, "/")
	require.Greater(t, len(frames), 2)
	truncated := strings.Join(frames[:len(frames)-1], "/")

	_, err = codec.DecodeBIP39Frames(truncated)
	assert.Error(t, err)
}

func TestBIP39Frames_DecodeRejectsDuplicateIndex(t *testing.T) {
	data := samplePacketBytes(t, 200)
	phrase, err := codec.EncodeBIP39Frames(data)
	require.NoError(t, err)

	frames := strings.Split(phrase, "/")
	require.Greater(t, len(frames), 2)
	duplicated := strings.Join(append(frames, frames[0]), "/")

	_, err = codec.DecodeBIP39Frames(duplicated)
	assert.Error(t, err)
}

func TestBIP39Frames_DecodeRejectsInvalidPhrase(t *testing.T) {
	_, err := codec.DecodeBIP39Frames("not a valid bip39 phrase at all here")
	assert.Error(t, err)
}
