package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardvault/shardvault/internal/codec"
)

func TestBase58Check_RoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0xFF, 0xAB, 0xCD}
	encoded := codec.EncodeBase58Check(payload)

	decoded, err := codec.DecodeBase58Check(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBase58Check_LeadingZeroBytesPreserved(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x01, 0x02}
	encoded := codec.EncodeBase58Check(payload)

	decoded, err := codec.DecodeBase58Check(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestBase58Check_RejectsBadChecksum(t *testing.T) {
	encoded := codec.EncodeBase58Check([]byte("hello share"))
	tampered := "1" + encoded[1:]

	_, err := codec.DecodeBase58Check(tampered)
	assert.Error(t, err)
}

func TestBase58Check_RejectsInvalidCharacter(t *testing.T) {
	_, err := codec.DecodeBase58Check("0OIl")
	assert.Error(t, err)
}

func TestBase64URL_RoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}
	encoded := codec.EncodeBase64URL(payload)

	decoded, err := codec.DecodeBase64URL(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
	assert.NotContains(t, encoded, "=")
}

func TestBase64URL_RejectsGarbage(t *testing.T) {
	_, err := codec.DecodeBase64URL("not!!valid!!base64")
	assert.Error(t, err)
}
