package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardvault/shardvault/pkg/shardvault"
)

func TestSelftestRoundTrip_AllEncodings(t *testing.T) {
	t.Parallel()

	secret := []byte("selftest secret value")

	for _, enc := range []shardvault.Encoding{shardvault.Base58Check, shardvault.Base64URL, shardvault.Words, shardvault.BIP39Frames} {
		err := selftestRoundTrip(secret, enc)
		require.NoError(t, err, "encoding %s", enc)
	}
}

func TestSelftestEncryptedRoundTrip(t *testing.T) {
	t.Parallel()

	err := selftestEncryptedRoundTrip([]byte("another secret"))
	require.NoError(t, err)
}

func TestSelftestRoundTrip_UnknownEncodingPropagatesError(t *testing.T) {
	t.Parallel()

	err := selftestRoundTrip([]byte("x"), shardvault.Encoding("bogus"))
	assert.Error(t, err)
}
