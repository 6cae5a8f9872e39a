package packet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardvault/shardvault/internal/packet"
	"github.com/shardvault/shardvault/internal/sharecrypto"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

func samplePacket(t *testing.T, withParams bool) packet.SharePacket {
	t.Helper()
	p := packet.SharePacket{
		K:       2,
		N:       3,
		X:       1,
		Payload: []byte("share payload bytes"),
	}
	for i := range p.SetID {
		p.SetID[i] = byte(i)
	}
	if withParams {
		params := sharecrypto.Params{MemKiB: 65536, Time: 3, Parallelism: 1}
		for i := range params.Salt {
			params.Salt[i] = byte(i + 1)
		}
		for i := range params.Nonce {
			params.Nonce[i] = byte(i + 2)
		}
		p.Params = &params
	}
	return p
}

func TestEncodeDecode_RoundTripUnencrypted(t *testing.T) {
	p := samplePacket(t, false)

	data, err := packet.Encode(p)
	require.NoError(t, err)

	decoded, err := packet.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, byte(packet.VersionCurrent), decoded.Version)
	assert.Equal(t, p.K, decoded.K)
	assert.Equal(t, p.N, decoded.N)
	assert.Equal(t, p.X, decoded.X)
	assert.Equal(t, p.SetID, decoded.SetID)
	assert.Equal(t, p.Payload, decoded.Payload)
	assert.Nil(t, decoded.Params)
}

func TestEncodeDecode_RoundTripEncrypted(t *testing.T) {
	p := samplePacket(t, true)

	data, err := packet.Encode(p)
	require.NoError(t, err)

	decoded, err := packet.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, decoded.Params)
	assert.Equal(t, *p.Params, *decoded.Params)
	assert.Equal(t, p.Payload, decoded.Payload)
}

func TestEncode_RejectsZeroX(t *testing.T) {
	p := samplePacket(t, false)
	p.X = 0

	_, err := packet.Encode(p)
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidX))
}

func TestDecode_BadMagic(t *testing.T) {
	p := samplePacket(t, false)
	data, err := packet.Encode(p)
	require.NoError(t, err)
	data[0] = 'X'

	_, err = packet.Decode(data)
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidPacket))
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	p := samplePacket(t, false)
	data, err := packet.Encode(p)
	require.NoError(t, err)
	data[4] = 99

	_, err = packet.Decode(data)
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidPacket))
}

func TestDecode_Truncated(t *testing.T) {
	p := samplePacket(t, true)
	data, err := packet.Encode(p)
	require.NoError(t, err)

	_, err = packet.Decode(data[:len(data)-5])
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidPacket))
}

func TestDecode_PayloadLengthOverflow(t *testing.T) {
	p := samplePacket(t, false)
	data, err := packet.Encode(p)
	require.NoError(t, err)

	lenOffset := len(data) - len(p.Payload) - 4
	data[lenOffset] = 0xFF

	_, err = packet.Decode(data)
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidPacket))
}

func TestDecode_VersionOneRejectsEncryptedFlag(t *testing.T) {
	p := samplePacket(t, true)
	data, err := packet.Encode(p)
	require.NoError(t, err)
	data[4] = packet.VersionLegacy

	_, err = packet.Decode(data)
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidPacket))
}

func TestDecode_VersionOneLegacyUnencrypted(t *testing.T) {
	p := samplePacket(t, false)
	data, err := packet.Encode(p)
	require.NoError(t, err)
	data[4] = packet.VersionLegacy

	decoded, err := packet.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, byte(packet.VersionLegacy), decoded.Version)
	assert.Equal(t, p.Payload, decoded.Payload)
}

func TestTotalLen_MatchesEncodedLength(t *testing.T) {
	p := samplePacket(t, true)
	data, err := packet.Encode(p)
	require.NoError(t, err)

	extra := append(append([]byte(nil), data...), []byte("trailing garbage")...)
	total, err := packet.TotalLen(extra)
	require.NoError(t, err)
	assert.Equal(t, len(data), total)
}

func TestValidateSiblings_AgreeingPackets(t *testing.T) {
	p1 := samplePacket(t, false)
	p2 := samplePacket(t, false)
	p2.X = 2

	err := packet.ValidateSiblings([]packet.SharePacket{p1, p2})
	require.NoError(t, err)
}

func TestValidateSiblings_DuplicateX(t *testing.T) {
	p1 := samplePacket(t, false)
	p2 := samplePacket(t, false)

	err := packet.ValidateSiblings([]packet.SharePacket{p1, p2})
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindDuplicateX))
}

func TestValidateSiblings_MismatchedSetID(t *testing.T) {
	p1 := samplePacket(t, false)
	p2 := samplePacket(t, false)
	p2.X = 2
	p2.SetID[0] ^= 0xFF

	err := packet.ValidateSiblings([]packet.SharePacket{p1, p2})
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInconsistentMetadata))
}

func TestValidateSiblings_CryptoParamsMismatch(t *testing.T) {
	p1 := samplePacket(t, true)
	p2 := samplePacket(t, false)
	p2.X = 2

	err := packet.ValidateSiblings([]packet.SharePacket{p1, p2})
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindCryptoParamsMismatch))
}

func TestValidateSiblings_ZeroX(t *testing.T) {
	p1 := samplePacket(t, false)
	p1.X = 0

	err := packet.ValidateSiblings([]packet.SharePacket{p1})
	require.Error(t, err)
	assert.True(t, shardvaulterr.OfKind(err, shardvaulterr.KindInvalidX))
}
