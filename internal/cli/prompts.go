package cli

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/shardvault/shardvault/internal/secure"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// promptPasswordFn and promptNewPassphraseFn are indirections over the real
// terminal-reading implementations, swappable in tests.
//
//nolint:gochecknoglobals // Test seam for terminal I/O
var (
	promptPasswordFn      = promptPassword
	promptNewPassphraseFn = promptNewPassphrase
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// promptNewPassphrase prompts for a new passphrase with confirmation.
// The caller is responsible for zeroing the returned bytes after use.
func promptNewPassphrase() ([]byte, error) {
	passphrase, err := promptPassword("Enter passphrase: ")
	if err != nil {
		return nil, err
	}

	if len(passphrase) == 0 {
		secure.Zero(passphrase)
		return nil, shardvaulterr.New(shardvaulterr.KindInvalidInput, "passphrase must not be empty")
	}

	confirm, err := promptPassword("Confirm passphrase: ")
	if err != nil {
		secure.Zero(passphrase)
		return nil, err
	}
	defer secure.Zero(confirm)

	if string(passphrase) != string(confirm) {
		secure.Zero(passphrase)
		return nil, shardvaulterr.New(shardvaulterr.KindInvalidInput, "passphrases do not match")
	}

	return passphrase, nil
}
