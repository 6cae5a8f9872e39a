// Package pipeline implements the secret pipeline (spec §4.4): it wraps
// the threshold engine with an integrity tag and an optional crypto
// envelope so that splitting/combining a secret also authenticates it and,
// with a passphrase, keeps it encrypted at rest across every share.
package pipeline

import (
	"github.com/zeebo/blake3"

	"github.com/shardvault/shardvault/internal/secure"
	"github.com/shardvault/shardvault/internal/shamir"
	"github.com/shardvault/shardvault/internal/sharecrypto"
	"github.com/shardvault/shardvault/pkg/shardvaulterr"
)

// TagLen is the size of the BLAKE3 integrity digest appended before
// splitting (spec §3 "Integrity tag").
const TagLen = 32

// Split runs the full split pipeline: optional encryption, tag, then
// threshold split. passphrase may be nil/empty to skip encryption.
func Split(secret []byte, k, n int, passphrase []byte) ([]shamir.RawShare, *sharecrypto.Params, error) {
	if len(secret) == 0 {
		return nil, nil, shamir.ErrSecretEmpty
	}

	ct := secret
	var params *sharecrypto.Params
	if len(passphrase) > 0 {
		ciphertext, p, err := sharecrypto.Encrypt(secret, passphrase)
		if err != nil {
			return nil, nil, err
		}
		ct = ciphertext
		params = &p
	}

	tag := blake3.Sum256(ct)
	tagged := make([]byte, 0, len(ct)+TagLen)
	tagged = append(tagged, ct...)
	tagged = append(tagged, tag[:]...)
	defer secure.Zero(tagged)

	setID, err := shamir.NewSetID()
	if err != nil {
		return nil, nil, shardvaulterr.Wrap(shardvaulterr.KindCrypto, err, "generate set id")
	}

	shares, err := shamir.Split(tagged, k, n, setID)
	if err != nil {
		return nil, nil, err
	}
	return shares, params, nil
}

// Combine reverses Split: threshold-combine, verify the integrity tag, then
// optionally decrypt. params must be identical across every input share
// (callers enforce this via packet.ValidateSiblings before calling here);
// a nil params means the set was never encrypted.
func Combine(shares []shamir.RawShare, params *sharecrypto.Params, passphrase []byte) ([]byte, error) {
	combined, err := shamir.Combine(shares)
	if err != nil {
		return nil, err
	}
	defer secure.Zero(combined)

	if len(combined) < TagLen {
		return nil, shardvaulterr.New(shardvaulterr.KindInvalidCombinedLength, "recovered data shorter than the integrity tag")
	}

	split := len(combined) - TagLen
	data := combined[:split]
	tag := combined[split:]

	want := blake3.Sum256(data)
	if !constantTimeEqual(want[:], tag) {
		return nil, shardvaulterr.New(shardvaulterr.KindIntegrityCheckFailed, "recovered data does not match its integrity tag")
	}

	if params == nil {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}

	if len(passphrase) == 0 {
		return nil, shardvaulterr.New(shardvaulterr.KindPassphraseRequired, "this share set is encrypted; a passphrase is required")
	}

	return sharecrypto.Decrypt(data, passphrase, *params)
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
