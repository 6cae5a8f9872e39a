package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPromptPassword_Success tests successful password prompt via function variable.
func TestPromptPassword_Success(t *testing.T) {
	orig := promptPasswordFn
	t.Cleanup(func() { promptPasswordFn = orig })

	promptPasswordFn = func(_ string) ([]byte, error) {
		return []byte("testpassphrase123"), nil
	}

	result, err := promptPasswordFn("Enter passphrase: ")
	require.NoError(t, err)
	assert.Equal(t, []byte("testpassphrase123"), result)
}

// TestPromptPassword_Error tests password prompt error handling.
func TestPromptPassword_Error(t *testing.T) {
	orig := promptPasswordFn
	t.Cleanup(func() { promptPasswordFn = orig })

	expectedErr := errors.New("terminal error") //nolint:err113 // test error
	promptPasswordFn = func(_ string) ([]byte, error) {
		return nil, expectedErr
	}

	result, err := promptPasswordFn("Enter passphrase: ")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "terminal error")
}

// TestPromptNewPassphrase_Success tests successful passphrase creation.
func TestPromptNewPassphrase_Success(t *testing.T) {
	orig := promptNewPassphraseFn
	t.Cleanup(func() { promptNewPassphraseFn = orig })

	promptNewPassphraseFn = func() ([]byte, error) {
		return []byte("correct-horse-battery-staple"), nil
	}

	result, err := promptNewPassphraseFn()
	require.NoError(t, err)
	assert.Equal(t, []byte("correct-horse-battery-staple"), result)
}

// TestPromptNewPassphrase_Empty tests empty-passphrase rejection via the indirection.
func TestPromptNewPassphrase_Empty(t *testing.T) {
	orig := promptNewPassphraseFn
	t.Cleanup(func() { promptNewPassphraseFn = orig })

	promptNewPassphraseFn = func() ([]byte, error) {
		return nil, errors.New("passphrase must not be empty") //nolint:err113 // test error
	}

	result, err := promptNewPassphraseFn()
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "must not be empty")
}

// TestPromptNewPassphrase_Mismatch tests confirmation mismatch.
func TestPromptNewPassphrase_Mismatch(t *testing.T) {
	orig := promptNewPassphraseFn
	t.Cleanup(func() { promptNewPassphraseFn = orig })

	promptNewPassphraseFn = func() ([]byte, error) {
		return nil, errors.New("passphrases do not match") //nolint:err113 // test error
	}

	result, err := promptNewPassphraseFn()
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "do not match")
}
