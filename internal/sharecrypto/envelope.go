// Package sharecrypto implements the crypto envelope (spec §4.3): an
// Argon2id key derivation function feeding a ChaCha20-Poly1305 AEAD, with
// explicit salt/nonce/cost parameters so they can travel inside a
// SharePacket instead of being hidden in an opaque container format.
package sharecrypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/shardvault/shardvault/internal/secure"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// Reader is the CSPRNG used for salts and nonces. Swappable only for tests.
//
//nolint:gochecknoglobals // narrow RNG hook for deterministic tests
var Reader io.Reader = rand.Reader

// deriveKey runs Argon2id over passphrase with the given salt and cost
// parameters, producing a KeyLen-byte key held in a zero-on-drop buffer.
func deriveKey(passphrase []byte, salt [SaltLen]byte, p Params) *secure.Bytes {
	key := argon2.IDKey(passphrase, salt[:], p.Time, p.MemKiB, uint8(p.Parallelism), KeyLen)
	sb := secure.FromSlice(key)
	secure.Zero(key)
	return sb
}

// Encrypt seals plaintext under a key derived from passphrase, generating a
// fresh salt and nonce and using the default cost parameters. Returns the
// ciphertext (AEAD tag appended) and the Params needed to reverse it.
func Encrypt(plaintext, passphrase []byte) ([]byte, Params, error) {
	params := Params{MemKiB: DefaultMemKiB, Time: DefaultTime, Parallelism: DefaultParallelism}

	if _, err := io.ReadFull(Reader, params.Salt[:]); err != nil {
		return nil, Params{}, shardvaulterr.Wrap(shardvaulterr.KindCrypto, err, "generate salt")
	}
	if _, err := io.ReadFull(Reader, params.Nonce[:]); err != nil {
		return nil, Params{}, shardvaulterr.Wrap(shardvaulterr.KindCrypto, err, "generate nonce")
	}

	key := deriveKey(passphrase, params.Salt, params)
	defer key.Destroy()

	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, Params{}, shardvaulterr.Wrap(shardvaulterr.KindCrypto, err, "construct aead")
	}

	ciphertext := aead.Seal(nil, params.Nonce[:], plaintext, nil)
	return ciphertext, params, nil
}

// Decrypt opens ciphertext using a key derived from passphrase and params.
// Per spec §7, failures here (bad passphrase, tampered ciphertext, or a
// rejected cost parameter) must all collapse to the same DecryptFailed
// error so a caller cannot distinguish the cause.
func Decrypt(ciphertext, passphrase []byte, params Params) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, decryptFailed()
	}

	key := deriveKey(passphrase, params.Salt, params)
	defer key.Destroy()

	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, decryptFailed()
	}

	plaintext, err := aead.Open(nil, params.Nonce[:], ciphertext, nil)
	if err != nil {
		return nil, decryptFailed()
	}
	return plaintext, nil
}

// decryptFailed always returns the same Kind/message/no-cause error so a
// bad passphrase, a tampered ciphertext, and a rejected cost parameter are
// indistinguishable to the caller (spec §7).
func decryptFailed() error {
	return shardvaulterr.New(shardvaulterr.KindDecryptFailed, "decrypt failed")
}
