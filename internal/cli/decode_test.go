package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shardvault/shardvault/pkg/shardvault"
)

func TestRunDecode_PrintsMetadata(t *testing.T) {
	packets, err := shardvault.SplitSecret([]byte("hello world"), 2, 3, nil)
	require.NoError(t, err)

	dir := t.TempDir()
	path := writeTestShare(t, dir, "share.txt", packets[0], shardvault.Base64URL)

	decodeSourceEncoding = ""
	t.Cleanup(func() { decodeSourceEncoding = "" })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runDecode(cmd, []string{path}))

	output := buf.String()
	assert.Contains(t, output, "share 1 of 3")
	assert.Contains(t, output, "encrypted: false")
}
